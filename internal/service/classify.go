package service

import (
	"errors"
	"net/http"

	apperrors "modelarena/internal/errors"
	"modelarena/internal/llm"
)

// Error kinds exposed to clients in the `error` field of error responses and
// in per-model comparison results.
const (
	KindInvalidRequest       = "invalid_request"
	KindInvalidMessage       = "invalid_message"
	KindConfigurationError   = "configuration_error"
	KindNotFound             = "not_found"
	KindConflict             = "conflict"
	KindAuthenticationFailed = "authentication_failed"
	KindPaymentRequired      = "payment_required"
	KindModelNotFound        = "model_not_found"
	KindRateLimitExceeded    = "rate_limit_exceeded"
	KindBadRequest           = "bad_request"
	KindGatewayTimeout       = "gateway_timeout"
	KindServiceUnavailable   = "service_unavailable"
	KindUpstreamError        = "upstream_error"
	KindUnexpectedFormat     = "unexpected_upstream_format"
	KindInternalError        = "internal_error"
)

// Classification is the client-facing triple an error maps to.
type Classification struct {
	Status  int
	Kind    string
	Message string
}

// ClassifyError maps any error raised while serving a chat or compare request
// to a client-facing (status, kind, message) triple. The mapping is a flat
// lookup and is applied identically whether the failing call came from the
// single-chat path (where it becomes the HTTP response) or from one leg of
// the compare fan-out (where it is embedded in that leg's result).
func ClassifyError(err error) Classification {
	var statusErr *llm.StatusError
	switch {
	case errors.Is(err, apperrors.ErrInvalidMessage):
		return Classification{http.StatusBadRequest, KindInvalidMessage, err.Error()}
	case errors.Is(err, apperrors.ErrInvalidRequest):
		return Classification{http.StatusBadRequest, KindInvalidRequest, err.Error()}
	case errors.Is(err, apperrors.ErrConfiguration):
		return Classification{http.StatusInternalServerError, KindConfigurationError, err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return Classification{http.StatusNotFound, KindNotFound, "The requested resource was not found."}
	case errors.Is(err, apperrors.ErrConflict):
		return Classification{http.StatusConflict, KindConflict, "A conflict occurred with the current state of the resource."}
	case errors.Is(err, llm.ErrTimeout):
		return Classification{http.StatusGatewayTimeout, KindGatewayTimeout, "The upstream service did not respond in time."}
	case errors.Is(err, llm.ErrUnreachable):
		return Classification{http.StatusServiceUnavailable, KindServiceUnavailable, "The upstream service could not be reached."}
	case errors.Is(err, llm.ErrUnexpectedFormat):
		return Classification{http.StatusBadGateway, KindUnexpectedFormat, "The upstream service returned an unexpected response."}
	case errors.As(err, &statusErr):
		return classifyUpstreamStatus(statusErr)
	default:
		return Classification{http.StatusInternalServerError, KindInternalError, "An unexpected internal server error occurred."}
	}
}

func classifyUpstreamStatus(err *llm.StatusError) Classification {
	kind := KindUpstreamError
	switch err.StatusCode {
	case http.StatusUnauthorized:
		kind = KindAuthenticationFailed
	case http.StatusPaymentRequired:
		kind = KindPaymentRequired
	case http.StatusNotFound:
		kind = KindModelNotFound
	case http.StatusTooManyRequests:
		kind = KindRateLimitExceeded
	case http.StatusBadRequest:
		kind = KindBadRequest
	}
	return Classification{err.StatusCode, kind, err.Body}
}
