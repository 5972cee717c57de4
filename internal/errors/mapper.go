// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
	"gorm.io/gorm"
)

// Map converts engine/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	if e, ok := As(err); ok {
		return mapEngineError(e)
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, gorm.ErrDuplicatedKey):
		return status.Error(codes.AlreadyExists, "record already exists")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// store internals stay in the logs
		return status.Error(codes.Internal, "something went wrong, please try again")
	}
}

func mapEngineError(e *Error) error {
	switch e.Kind {
	case KindValidation:
		st := status.New(codes.InvalidArgument, e.Message)
		if len(e.Violations) == 0 {
			return st.Err()
		}
		br := &errdetails.BadRequest{}
		for _, v := range e.Violations {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Description,
			})
		}
		return withDetails(st, br)

	case KindNotFound:
		return status.Error(codes.NotFound, e.Message)

	case KindProfileRequired:
		st := status.New(codes.FailedPrecondition, e.Message)
		return withDetails(st, &errdetails.PreconditionFailure{
			Violations: []*errdetails.PreconditionFailure_Violation{{
				Type:        "PROFILE",
				Subject:     "dating_profile",
				Description: e.Message,
			}},
		})

	case KindQuotaExhausted:
		st := status.New(codes.ResourceExhausted, e.Message)
		retry := time.Until(e.ResetAt)
		if retry < 0 {
			retry = 0
		}
		return withDetails(st,
			&errdetails.QuotaFailure{
				Violations: []*errdetails.QuotaFailure_Violation{{
					Subject:     "super_likes",
					Description: e.Message,
				}},
			},
			&errdetails.RetryInfo{RetryDelay: durationpb.New(retry)},
		)

	case KindConflict:
		return AlreadyExists(e.Message)

	default:
		return status.Error(codes.Internal, "something went wrong, please try again")
	}
}

func withDetails(st *status.Status, details ...protoadapt.MessageV1) error {
	withD, err := st.WithDetails(details...)
	if err != nil {
		return st.Err()
	}
	return withD.Err()
}

// HTTPStatus converts an error into the HTTP status code used by the gateway.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindProfileRequired:
		return http.StatusPreconditionFailed
	case KindQuotaExhausted:
		return http.StatusTooManyRequests
	case KindConflict:
		return http.StatusConflict
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists creates a gRPC AlreadyExists error.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}
