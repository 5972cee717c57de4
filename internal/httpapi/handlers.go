package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comradezone/dating/internal/db"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/matching"
)

type profileJSON struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"account_id"`
	DisplayName    string    `json:"display_name"`
	Age            int       `json:"age"`
	Gender         db.Gender `json:"gender"`
	SeekingGenders []string  `json:"seeking_genders"`
	MinAge         int       `json:"min_age"`
	MaxAge         int       `json:"max_age"`
	ShowMe         bool      `json:"show_me"`
	Completeness   int       `json:"completeness"`
	Bio            string    `json:"bio,omitempty"`
	Interests      []string  `json:"interests"`
	CreatedAt      time.Time `json:"created_at"`
}

func toProfileJSON(p matching.Profile) profileJSON {
	seeking := make([]string, 0, len(p.SeekingGenders))
	for _, g := range p.SeekingGenders {
		seeking = append(seeking, string(g))
	}
	return profileJSON{
		ID:             p.ID,
		AccountID:      p.AccountID,
		DisplayName:    p.DisplayName,
		Age:            p.Age,
		Gender:         p.Gender,
		SeekingGenders: seeking,
		MinAge:         p.MinAge,
		MaxAge:         p.MaxAge,
		ShowMe:         p.ShowMe,
		Completeness:   p.Completeness,
		Bio:            p.Bio,
		Interests:      p.Interests,
		CreatedAt:      p.CreatedAt,
	}
}

func toProfilesJSON(profiles []matching.Profile) []profileJSON {
	out := make([]profileJSON, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileJSON(p))
	}
	return out
}

// badBody answers a request whose JSON body could not be decoded.
func badBody(c *gin.Context, err error) {
	writeError(c, svcErr.Validation("malformed request body",
		svcErr.FieldViolation{Field: "body", Description: err.Error()}))
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var in matching.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	p, err := h.engine.UpsertProfile(c.Request.Context(), c.Param("accountID"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileJSON(p))
}

func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.engine.GetProfile(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileJSON(p))
}

func (h *Handler) ListCandidates(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, svcErr.Validation("invalid limit",
				svcErr.FieldViolation{Field: "limit", Description: "must be an integer"}))
			return
		}
		limit = n
	}
	candidates, err := h.engine.ListCandidates(c.Request.Context(), c.Param("profileID"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": toProfilesJSON(candidates)})
}

type swipeRequest struct {
	TargetID string `json:"target_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

func (h *Handler) RecordSwipe(c *gin.Context) {
	var req swipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	swipeType, err := db.ParseSwipeType(req.Type)
	if err != nil {
		writeError(c, svcErr.Validation("unknown swipe type",
			svcErr.FieldViolation{Field: "type", Description: "must be one of LIKE, PASS, SUPER_LIKE"}))
		return
	}

	res, err := h.engine.RecordSwipe(c.Request.Context(), c.Param("profileID"), req.TargetID, swipeType)
	if err != nil {
		writeError(c, err)
		return
	}
	body := gin.H{"matched": res.Matched}
	if res.Matched {
		body["match_id"] = res.MatchID
	}
	c.JSON(http.StatusOK, body)
}

type matchJSON struct {
	ID            string      `json:"match_id"`
	Other         profileJSON `json:"other"`
	MatchedAt     time.Time   `json:"matched_at"`
	LastMessageAt *time.Time  `json:"last_message_at"`
}

func (h *Handler) ListMatches(c *gin.Context) {
	matches, err := h.engine.ListMatches(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]matchJSON, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchJSON{
			ID:            m.ID,
			Other:         toProfileJSON(m.Other),
			MatchedAt:     m.MatchedAt,
			LastMessageAt: m.LastMessageAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"matches": out})
}

func (h *Handler) Unmatch(c *gin.Context) {
	if err := h.engine.Unmatch(c.Request.Context(), c.Param("matchID"), c.Param("profileID")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) TouchMatch(c *gin.Context) {
	if err := h.engine.TouchMatch(c.Request.Context(), c.Param("matchID"), c.Param("profileID")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type blockRequest struct {
	BlockedID string `json:"blocked_id" binding:"required"`
}

func (h *Handler) BlockProfile(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	if err := h.engine.BlockProfile(c.Request.Context(), c.Param("profileID"), req.BlockedID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type incomingLikeJSON struct {
	Profile   profileJSON `json:"profile"`
	SuperLike bool        `json:"super_like"`
	LikedAt   time.Time   `json:"liked_at"`
}

func (h *Handler) ListIncomingLikes(c *gin.Context) {
	page, err := h.engine.ListIncomingLikes(c.Request.Context(), c.Param("profileID"), c.Query("page_token"))
	if err != nil {
		writeError(c, err)
		return
	}
	likes := make([]incomingLikeJSON, 0, len(page.Likes))
	for _, l := range page.Likes {
		likes = append(likes, incomingLikeJSON{
			Profile:   toProfileJSON(l.Profile),
			SuperLike: l.SuperLike,
			LikedAt:   l.LikedAt,
		})
	}
	body := gin.H{"likes": likes}
	if page.NextPageToken != "" {
		body["next_page_token"] = page.NextPageToken
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) CountIncomingLikes(c *gin.Context) {
	n, err := h.engine.CountIncomingLikes(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *Handler) SuperLikeQuota(c *gin.Context) {
	q, err := h.engine.SuperLikeQuota(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"remaining": q.Remaining, "resets_at": q.ResetsAt})
}
