package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

// newTestHandler builds a Handler around accounts with a 1 KiB body limit.
func newTestHandler(accounts service.AccountService) *Handler {
	svcs := &service.Services{
		AccountService: accounts,
		AppInfoService: &stubAppInfoService{version: "test-version"},
	}
	return NewHandler(svcs, config.Server{MaxBodyBytes: 1024}, logger.Nop())
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{MaxBodyBytes: 42}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, int64(42), h.maxBodyBytes)
}
