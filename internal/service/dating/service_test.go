package dating_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"
	"gorm.io/gorm"

	"github.com/comradezone/dating/internal/app"
	"github.com/comradezone/dating/internal/cache"
	"github.com/comradezone/dating/internal/config"
	"github.com/comradezone/dating/internal/db/dbtest"
	pb "github.com/comradezone/dating/internal/proto/dating"
	"github.com/comradezone/dating/internal/server"
	"github.com/comradezone/dating/internal/service/dating"
)

//
// Test helpers
//

type harness struct {
	db     *gorm.DB
	client pb.DatingServiceClient
	conn   *grpc.ClientConn
}

// startServer runs the full gRPC stack (interceptors, health, dating
// service) over an in-memory listener backed by SQLite and miniredis.
func startServer(t *testing.T) *harness {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })

	gdb := dbtest.Open(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCtx, err := app.New(cfg, gdb, rc, log)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(log, dating.NewRegistrar(appCtx))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &harness{db: gdb, client: pb.NewDatingServiceClient(conn), conn: conn}
}

func (h *harness) createProfile(t *testing.T, name, gender string, seeking ...string) *pb.Profile {
	t.Helper()
	resp, err := h.client.UpsertProfile(context.Background(), &pb.UpsertProfileRequest{
		AccountId:      "acct-" + name,
		DisplayName:    name,
		Age:            22,
		Gender:         gender,
		SeekingGenders: seeking,
		MinAge:         18,
		MaxAge:         30,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.GetProfile().GetId())
	return resp.GetProfile()
}

func badRequestFields(t *testing.T, err error) []string {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok)
	var fields []string
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				fields = append(fields, v.GetField())
			}
		}
	}
	return fields
}

//
// Tests
//

func TestDatingService_MutualLikeFlow(t *testing.T) {
	ctx := context.Background()
	h := startServer(t)

	alex := h.createProfile(t, "alex", "MALE", "FEMALE")
	bea := h.createProfile(t, "bea", "FEMALE", "MALE", "NON_BINARY")

	cands, err := h.client.ListCandidates(ctx, &pb.ListCandidatesRequest{ProfileId: alex.GetId()})
	require.NoError(t, err)
	require.Len(t, cands.GetCandidates(), 1)
	assert.Equal(t, bea.GetId(), cands.GetCandidates()[0].GetId())

	swipe, err := h.client.RecordSwipe(ctx, &pb.RecordSwipeRequest{
		ActorProfileId: alex.GetId(), TargetProfileId: bea.GetId(), Type: "like",
	})
	require.NoError(t, err)
	assert.False(t, swipe.GetMatched())

	count, err := h.client.CountIncomingLikes(ctx, &pb.CountIncomingLikesRequest{ProfileId: bea.GetId()})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count.GetCount())

	likes, err := h.client.ListIncomingLikes(ctx, &pb.ListIncomingLikesRequest{ProfileId: bea.GetId()})
	require.NoError(t, err)
	require.Len(t, likes.GetLikes(), 1)
	assert.Equal(t, alex.GetId(), likes.GetLikes()[0].Liker.GetId())
	assert.Empty(t, likes.GetNextPaginationToken())

	swipe, err = h.client.RecordSwipe(ctx, &pb.RecordSwipeRequest{
		ActorProfileId: bea.GetId(), TargetProfileId: alex.GetId(), Type: "SUPER_LIKE",
	})
	require.NoError(t, err)
	assert.True(t, swipe.GetMatched())
	assert.NotEmpty(t, swipe.MatchId)

	quota, err := h.client.GetSuperLikeQuota(ctx, &pb.GetSuperLikeQuotaRequest{ProfileId: bea.GetId()})
	require.NoError(t, err)
	assert.Equal(t, int32(2), quota.Remaining)
	assert.Greater(t, quota.ResetsAtUnixMs, uint64(time.Now().UnixMilli()))

	matches, err := h.client.ListMatches(ctx, &pb.ListMatchesRequest{ProfileId: alex.GetId()})
	require.NoError(t, err)
	require.Len(t, matches.GetMatches(), 1)
	assert.Equal(t, bea.GetId(), matches.GetMatches()[0].GetOther().GetId())
	assert.Nil(t, matches.GetMatches()[0].LastMessageAtUnixMs)

	_, err = h.client.TouchMatch(ctx, &pb.TouchMatchRequest{MatchId: swipe.MatchId, ProfileId: alex.GetId()})
	require.NoError(t, err)

	_, err = h.client.Unmatch(ctx, &pb.UnmatchRequest{MatchId: swipe.MatchId, ProfileId: bea.GetId()})
	require.NoError(t, err)
	_, err = h.client.Unmatch(ctx, &pb.UnmatchRequest{MatchId: swipe.MatchId, ProfileId: bea.GetId()})
	require.NoError(t, err)

	matches, err = h.client.ListMatches(ctx, &pb.ListMatchesRequest{ProfileId: alex.GetId()})
	require.NoError(t, err)
	assert.Empty(t, matches.GetMatches())
}

func TestDatingService_ErrorCodes(t *testing.T) {
	ctx := context.Background()
	h := startServer(t)
	a := h.createProfile(t, "a", "MALE", "FEMALE")
	b := h.createProfile(t, "b", "FEMALE", "MALE")

	t.Run("self swipe", func(t *testing.T) {
		_, err := h.client.RecordSwipe(ctx, &pb.RecordSwipeRequest{
			ActorProfileId: a.GetId(), TargetProfileId: a.GetId(), Type: "LIKE",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, badRequestFields(t, err), "target_id")
	})

	t.Run("unknown swipe type", func(t *testing.T) {
		_, err := h.client.RecordSwipe(ctx, &pb.RecordSwipeRequest{
			ActorProfileId: a.GetId(), TargetProfileId: b.GetId(), Type: "WINK",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("no profile yet", func(t *testing.T) {
		_, err := h.client.ListCandidates(ctx, &pb.ListCandidatesRequest{ProfileId: "ghost"})
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := h.client.BlockProfile(ctx, &pb.BlockProfileRequest{
			BlockerProfileId: a.GetId(), BlockedProfileId: "ghost",
		})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("invalid profile", func(t *testing.T) {
		_, err := h.client.UpsertProfile(ctx, &pb.UpsertProfileRequest{
			AccountId: "acct-young", DisplayName: "kid", Age: 17, Gender: "MALE",
			SeekingGenders: []string{"FEMALE"}, MinAge: 18, MaxAge: 20,
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, badRequestFields(t, err), "age")
	})

	t.Run("quota exhausted", func(t *testing.T) {
		targets := []*pb.Profile{
			b,
			h.createProfile(t, "c", "FEMALE", "MALE"),
			h.createProfile(t, "d", "FEMALE", "MALE"),
			h.createProfile(t, "e", "FEMALE", "MALE"),
		}
		for _, target := range targets[:3] {
			_, err := h.client.RecordSwipe(ctx, &pb.RecordSwipeRequest{
				ActorProfileId: a.GetId(), TargetProfileId: target.GetId(), Type: "SUPER_LIKE",
			})
			require.NoError(t, err)
		}
		_, err := h.client.RecordSwipe(ctx, &pb.RecordSwipeRequest{
			ActorProfileId: a.GetId(), TargetProfileId: targets[3].GetId(), Type: "SUPER_LIKE",
		})
		st, _ := status.FromError(err)
		assert.Equal(t, codes.ResourceExhausted, st.Code())

		var retry *errdetails.RetryInfo
		for _, d := range st.Details() {
			if ri, ok := d.(*errdetails.RetryInfo); ok {
				retry = ri
			}
		}
		require.NotNil(t, retry)
		assert.LessOrEqual(t, retry.GetRetryDelay().AsDuration(), 24*time.Hour)
	})
}

func TestDatingService_IncomingLikesPagination(t *testing.T) {
	ctx := context.Background()
	h := startServer(t)
	me := h.createProfile(t, "me", "FEMALE", "MALE")

	// default page size is 20
	for i := 0; i < 21; i++ {
		liker := h.createProfile(t, "liker"+string(rune('a'+i)), "MALE", "FEMALE")
		_, err := h.client.RecordSwipe(ctx, &pb.RecordSwipeRequest{
			ActorProfileId: liker.GetId(), TargetProfileId: me.GetId(), Type: "LIKE",
		})
		require.NoError(t, err)
	}

	first, err := h.client.ListIncomingLikes(ctx, &pb.ListIncomingLikesRequest{ProfileId: me.GetId()})
	require.NoError(t, err)
	assert.Len(t, first.GetLikes(), 20)
	require.NotNil(t, first.NextPaginationToken)

	second, err := h.client.ListIncomingLikes(ctx, &pb.ListIncomingLikesRequest{
		ProfileId: me.GetId(), PaginationToken: first.NextPaginationToken,
	})
	require.NoError(t, err)
	assert.Len(t, second.GetLikes(), 1)
	assert.Nil(t, second.NextPaginationToken)

	bad := "garbage"
	_, err = h.client.ListIncomingLikes(ctx, &pb.ListIncomingLikesRequest{ProfileId: me.GetId(), PaginationToken: &bad})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReflectionResolvesDatingService(t *testing.T) {
	h := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(h.conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: pb.DatingService_ServiceDesc.ServiceName,
		},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	require.Nil(t, resp.GetErrorResponse())
	require.NotEmpty(t, resp.GetFileDescriptorResponse().GetFileDescriptorProto())

	fd, err := protoregistry.GlobalFiles.FindFileByPath(pb.DatingService_ServiceDesc.Metadata.(string))
	require.NoError(t, err)
	svc := fd.Services().ByName("DatingService")
	require.NotNil(t, svc)
	assert.Equal(t, len(pb.DatingService_ServiceDesc.Methods), svc.Methods().Len())
}

func TestMessagesUseProtobufWire(t *testing.T) {
	token := "next"
	in := &pb.ListIncomingLikesResponse{
		Likes:               []*pb.IncomingLike{{Liker: &pb.Profile{Id: "p1", SeekingGenders: []string{"MALE"}}, SuperLike: true}},
		NextPaginationToken: &token,
	}
	raw, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &pb.ListIncomingLikesResponse{}
	require.NoError(t, proto.Unmarshal(raw, out))
	assert.True(t, proto.Equal(in, out))
	assert.Equal(t, "next", out.GetNextPaginationToken())

	// unset optional fields stay distinguishable from empty values
	out.Reset()
	require.NoError(t, proto.Unmarshal(nil, out))
	assert.Nil(t, out.NextPaginationToken)
}

func TestHealthService(t *testing.T) {
	h := startServer(t)

	resp, err := healthpb.NewHealthClient(h.conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
