package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	svcErr "github.com/comradezone/dating/internal/errors"
)

type errorBody struct {
	Kind       string                  `json:"kind"`
	Message    string                  `json:"message"`
	Violations []svcErr.FieldViolation `json:"violations,omitempty"`
	ResetAt    *time.Time              `json:"reset_at,omitempty"`
}

// writeError renders err with the status from errors.HTTPStatus. Internal
// failures are replaced by a generic message.
func writeError(c *gin.Context, err error) {
	code := svcErr.HTTPStatus(err)
	body := errorBody{Kind: svcErr.KindOf(err).String(), Message: "something went wrong, please try again"}

	if e, ok := svcErr.As(err); ok && code < http.StatusInternalServerError {
		body.Message = e.Message
		body.Violations = e.Violations
		if e.Kind == svcErr.KindQuotaExhausted && !e.ResetAt.IsZero() {
			reset := e.ResetAt
			body.ResetAt = &reset
			retry := int(time.Until(reset).Seconds())
			if retry < 0 {
				retry = 0
			}
			c.Header("Retry-After", strconv.Itoa(retry))
		}
	}
	c.AbortWithStatusJSON(code, gin.H{"error": body})
}
