package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-gate/internal/adapter"
	"github.com/MKhiriev/go-account-gate/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	adapter.ErrUpstreamUnavailable: http.StatusBadGateway,
	adapter.ErrUpstreamTimeout:     http.StatusGatewayTimeout,

	ErrRequestBodyTooLarge:   http.StatusRequestEntityTooLarge,
	ErrUnreadableRequestBody: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
