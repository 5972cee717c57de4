package dating

import (
	"context"
	"log/slog"

	"github.com/comradezone/dating/internal/app"
	"github.com/comradezone/dating/internal/db"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/logger"
	"github.com/comradezone/dating/internal/matching"
	pb "github.com/comradezone/dating/internal/proto/dating"
)

// Service implements the Dating gRPC API.
// It is a thin adapter: requests are translated into matching.Engine calls
// and engine errors into gRPC statuses via errors.Map.
type Service struct {
	appCtx *app.AppContext
	engine *matching.Engine

	pb.UnimplementedDatingServiceServer
}

// NewDatingService creates a new Dating service with dependencies from AppContext.
func NewDatingService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		engine: appCtx.Engine,
	}
}

// log prefers the request-scoped logger set by the server interceptor.
func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx, s.appCtx.Logger)
}

// UpsertProfile creates or edits the profile owned by account_id.
func (s *Service) UpsertProfile(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.UpsertProfileResponse, error) {
	s.log(ctx).Debug("UpsertProfile called", "account", req.GetAccountId())

	p, err := s.engine.UpsertProfile(ctx, req.GetAccountId(), matching.ProfileInput{
		DisplayName:    req.DisplayName,
		Age:            int(req.Age),
		Gender:         req.Gender,
		SeekingGenders: req.SeekingGenders,
		MinAge:         int(req.MinAge),
		MaxAge:         int(req.MaxAge),
		ShowMe:         req.ShowMe,
		Bio:            req.Bio,
		Interests:      req.Interests,
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UpsertProfileResponse{Profile: toProfile(p)}, nil
}

func (s *Service) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	p, err := s.engine.GetProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetProfileResponse{Profile: toProfile(p)}, nil
}

// ListCandidates returns the next batch of profiles to swipe on.
//
// Example:
//
//	svc.ListCandidates(ctx, &pb.ListCandidatesRequest{ProfileId: "p1", Limit: 10})
func (s *Service) ListCandidates(ctx context.Context, req *pb.ListCandidatesRequest) (*pb.ListCandidatesResponse, error) {
	s.log(ctx).Debug("ListCandidates called", "profile", req.GetProfileId(), "limit", req.GetLimit())

	candidates, err := s.engine.ListCandidates(ctx, req.GetProfileId(), int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListCandidatesResponse{Candidates: make([]*pb.Profile, 0, len(candidates))}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, toProfile(c))
	}
	return resp, nil
}

// RecordSwipe stores a LIKE, PASS or SUPER_LIKE and reports whether it
// completed a match.
//
// Example:
//
//	svc.RecordSwipe(ctx, &pb.RecordSwipeRequest{ActorProfileId: "a", TargetProfileId: "b", Type: "LIKE"})
func (s *Service) RecordSwipe(ctx context.Context, req *pb.RecordSwipeRequest) (*pb.RecordSwipeResponse, error) {
	s.log(ctx).Debug(
		"RecordSwipe called",
		"actor", req.GetActorProfileId(),
		"target", req.GetTargetProfileId(),
		"type", req.GetType(),
	)

	swipeType, err := db.ParseSwipeType(req.GetType())
	if err != nil {
		return nil, svcErr.InvalidArgument("type must be one of LIKE, PASS, SUPER_LIKE")
	}

	res, err := s.engine.RecordSwipe(ctx, req.GetActorProfileId(), req.GetTargetProfileId(), swipeType)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RecordSwipeResponse{Matched: res.Matched, MatchId: res.MatchID}, nil
}

func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	matches, err := s.engine.ListMatches(ctx, req.GetProfileId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListMatchesResponse{Matches: make([]*pb.Match, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, toMatch(m))
	}
	return resp, nil
}

func (s *Service) Unmatch(ctx context.Context, req *pb.UnmatchRequest) (*pb.UnmatchResponse, error) {
	if err := s.engine.Unmatch(ctx, req.GetMatchId(), req.GetProfileId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UnmatchResponse{}, nil
}

func (s *Service) BlockProfile(ctx context.Context, req *pb.BlockProfileRequest) (*pb.BlockProfileResponse, error) {
	if err := s.engine.BlockProfile(ctx, req.GetBlockerProfileId(), req.GetBlockedProfileId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.BlockProfileResponse{}, nil
}

// ListIncomingLikes returns the profiles waiting for a swipe back.
//
// Behavior:
//   - Supports cursor-based pagination with pagination_token.
//   - next_pagination_token is absent on the last page.
func (s *Service) ListIncomingLikes(ctx context.Context, req *pb.ListIncomingLikesRequest) (*pb.ListIncomingLikesResponse, error) {
	s.log(ctx).Debug("ListIncomingLikes called", "profile", req.GetProfileId(), "token", req.GetPaginationToken())

	page, err := s.engine.ListIncomingLikes(ctx, req.GetProfileId(), req.GetPaginationToken())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListIncomingLikesResponse{Likes: make([]*pb.IncomingLike, 0, len(page.Likes))}
	for _, l := range page.Likes {
		resp.Likes = append(resp.Likes, &pb.IncomingLike{
			Liker:         toProfile(l.Profile),
			SuperLike:     l.SuperLike,
			LikedAtUnixMs: unixMillis(l.LikedAt),
		})
	}
	if page.NextPageToken != "" {
		next := page.NextPageToken
		resp.NextPaginationToken = &next
	}

	s.log(ctx).Debug("ListIncomingLikes result", "like_count", len(resp.Likes), "next_token", resp.GetNextPaginationToken())
	return resp, nil
}

func (s *Service) CountIncomingLikes(ctx context.Context, req *pb.CountIncomingLikesRequest) (*pb.CountIncomingLikesResponse, error) {
	n, err := s.engine.CountIncomingLikes(ctx, req.GetProfileId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountIncomingLikesResponse{Count: uint64(n)}, nil
}

func (s *Service) GetSuperLikeQuota(ctx context.Context, req *pb.GetSuperLikeQuotaRequest) (*pb.GetSuperLikeQuotaResponse, error) {
	q, err := s.engine.SuperLikeQuota(ctx, req.GetProfileId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetSuperLikeQuotaResponse{
		Remaining:      int32(q.Remaining),
		ResetsAtUnixMs: unixMillis(q.ResetsAt),
	}, nil
}

// TouchMatch is called by the messaging thread whenever a message is sent.
func (s *Service) TouchMatch(ctx context.Context, req *pb.TouchMatchRequest) (*pb.TouchMatchResponse, error) {
	if err := s.engine.TouchMatch(ctx, req.GetMatchId(), req.GetProfileId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.TouchMatchResponse{}, nil
}
