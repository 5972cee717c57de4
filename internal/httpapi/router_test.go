package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comradezone/dating/internal/db"
	"github.com/comradezone/dating/internal/db/dbtest"
	"github.com/comradezone/dating/internal/httpapi"
	"github.com/comradezone/dating/internal/matching"
)

func newRouter(t *testing.T) (*gin.Engine, *matching.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := dbtest.Open(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := matching.NewEngine(gdb, nil, log)
	return httpapi.NewRouter(engine, log), engine
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createProfile(t *testing.T, r http.Handler, account, gender string, seeking ...string) string {
	t.Helper()
	w := do(t, r, http.MethodPut, "/v1/accounts/"+account+"/profile", map[string]any{
		"display_name":    account,
		"age":             23,
		"gender":          gender,
		"seeking_genders": seeking,
		"min_age":         18,
		"max_age":         35,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func TestHealthz(t *testing.T) {
	r, _ := newRouter(t)
	w := do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwipeAndMatchOverHTTP(t *testing.T) {
	r, _ := newRouter(t)
	a := createProfile(t, r, "a", "MALE", "FEMALE")
	b := createProfile(t, r, "b", "FEMALE", "MALE")

	w := do(t, r, http.MethodGet, "/v1/profiles/"+a+"/candidates?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cands := decode(t, w)["candidates"].([]any)
	require.Len(t, cands, 1)
	assert.Equal(t, b, cands[0].(map[string]any)["id"])

	w = do(t, r, http.MethodPost, "/v1/profiles/"+a+"/swipes", map[string]string{"target_id": b, "type": "LIKE"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["matched"])

	w = do(t, r, http.MethodGet, "/v1/profiles/"+b+"/likes/incoming/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = do(t, r, http.MethodPost, "/v1/profiles/"+b+"/swipes", map[string]string{"target_id": a, "type": "like"})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, true, res["matched"])
	matchID := res["match_id"].(string)

	w = do(t, r, http.MethodPost, "/v1/profiles/"+a+"/matches/"+matchID+"/activity", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/v1/profiles/"+a+"/matches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	matches := decode(t, w)["matches"].([]any)
	require.Len(t, matches, 1)
	assert.NotNil(t, matches[0].(map[string]any)["last_message_at"])

	w = do(t, r, http.MethodPost, "/v1/profiles/"+a+"/blocks", map[string]string{"blocked_id": b})
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodPost, "/v1/profiles/"+a+"/blocks", map[string]string{"blocked_id": b})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/v1/profiles/"+a+"/matches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["matches"])
}

func TestErrorResponses(t *testing.T) {
	r, engine := newRouter(t)
	a := createProfile(t, r, "a", "MALE", "FEMALE")

	t.Run("validation", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/profiles/"+a+"/swipes", map[string]string{"target_id": a, "type": "LIKE"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)["error"].(map[string]any)
		assert.Equal(t, "validation", body["kind"])
		assert.NotEmpty(t, body["violations"])
	})

	t.Run("unknown type", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/profiles/"+a+"/swipes", map[string]string{"target_id": "x", "type": "WINK"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/profiles/"+a+"/blocks", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("profile required", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/profiles/ghost/candidates", nil)
		assert.Equal(t, http.StatusPreconditionFailed, w.Code)
		assert.Equal(t, "profile_required", decode(t, w)["error"].(map[string]any)["kind"])
	})

	t.Run("not found", func(t *testing.T) {
		w := do(t, r, http.MethodDelete, "/v1/profiles/"+a+"/matches/ghost", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("quota exhausted", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			target := createProfile(t, r, "t"+string(rune('0'+i)), "FEMALE", "MALE")
			_, err := engine.RecordSwipe(t.Context(), a, target, db.SwipeSuperLike)
			require.NoError(t, err)
		}
		last := createProfile(t, r, "t-last", "FEMALE", "MALE")

		w := do(t, r, http.MethodPost, "/v1/profiles/"+a+"/swipes", map[string]string{"target_id": last, "type": "SUPER_LIKE"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		body := decode(t, w)["error"].(map[string]any)
		assert.Equal(t, "quota_exhausted", body["kind"])
		assert.NotEmpty(t, body["reset_at"])

		w = do(t, r, http.MethodGet, "/v1/profiles/"+a+"/quota", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, decode(t, w)["remaining"])
	})
}
