package dating

import (
	"time"

	"github.com/comradezone/dating/internal/matching"
	pb "github.com/comradezone/dating/internal/proto/dating"
)

func unixMillis(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.UnixMilli())
}

func toProfile(p matching.Profile) *pb.Profile {
	seeking := make([]string, 0, len(p.SeekingGenders))
	for _, g := range p.SeekingGenders {
		seeking = append(seeking, string(g))
	}
	return &pb.Profile{
		Id:              p.ID,
		AccountId:       p.AccountID,
		DisplayName:     p.DisplayName,
		Age:             int32(p.Age),
		Gender:          string(p.Gender),
		SeekingGenders:  seeking,
		MinAge:          int32(p.MinAge),
		MaxAge:          int32(p.MaxAge),
		ShowMe:          p.ShowMe,
		Completeness:    int32(p.Completeness),
		Bio:             p.Bio,
		Interests:       p.Interests,
		CreatedAtUnixMs: unixMillis(p.CreatedAt),
	}
}

func toMatch(m matching.Match) *pb.Match {
	out := &pb.Match{
		MatchId:         m.ID,
		Other:           toProfile(m.Other),
		MatchedAtUnixMs: unixMillis(m.MatchedAt),
	}
	if m.LastMessageAt != nil {
		ts := unixMillis(*m.LastMessageAt)
		out.LastMessageAtUnixMs = &ts
	}
	return out
}
