package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

func TestErrorIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("record swipe: %w", QuotaExhausted("no super likes left today", time.Now()))

	assert.True(t, errors.Is(err, ErrQuotaExhausted))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, KindQuotaExhausted, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestMap_Validation(t *testing.T) {
	err := Map(Validation("invalid profile", FieldViolation{Field: "age", Description: "must be at least 18"}))

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	assert.Equal(t, "age", br.GetFieldViolations()[0].GetField())
}

func TestMap_QuotaCarriesRetryInfo(t *testing.T) {
	err := Map(QuotaExhausted("no super likes left today", time.Now().Add(2*time.Hour)))

	st, _ := status.FromError(err)
	assert.Equal(t, codes.ResourceExhausted, st.Code())

	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			retry = r
		}
	}
	require.NotNil(t, retry)
	assert.Greater(t, retry.GetRetryDelay().AsDuration(), time.Hour)
}

func TestMap_Kinds(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
		http int
	}{
		{NotFound("match not found"), codes.NotFound, http.StatusNotFound},
		{ProfileRequired("create a profile first"), codes.FailedPrecondition, http.StatusPreconditionFailed},
		{Conflict("profile already exists"), codes.AlreadyExists, http.StatusConflict},
		{Internal("db down", errors.New("dial tcp")), codes.Internal, http.StatusInternalServerError},
		{gorm.ErrRecordNotFound, codes.NotFound, http.StatusNotFound},
		{context.DeadlineExceeded, codes.DeadlineExceeded, http.StatusGatewayTimeout},
	}
	for _, tc := range cases {
		st, _ := status.FromError(Map(tc.err))
		assert.Equal(t, tc.code, st.Code(), tc.err.Error())
		assert.Equal(t, tc.http, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestMap_InternalHidesCause(t *testing.T) {
	st, _ := status.FromError(Map(Internal("record swipe", errors.New("Error 1205: lock wait timeout"))))
	assert.NotContains(t, st.Message(), "1205")
}
