package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/utils"
	"github.com/MKhiriev/go-account-gate/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath = "/api/user/register"
	loginPath    = "/api/user/login"

	traceIDHeader = "X-Trace-ID"
)

type httpAccountAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAccountAdapter constructs an HTTP/REST implementation of
// [AccountAdapter]. It normalises cfg.Address (a missing scheme defaults to
// http) and configures the underlying client with cfg.RequestTimeout.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed as a URL with a host.
func NewHTTPAccountAdapter(cfg config.Upstream, logger *logger.Logger) (AccountAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpAccountAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [AccountAdapter]. It POSTs req to
// POST /api/user/register.
func (h *httpAccountAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UpstreamResponse, error) {
	return h.forward(ctx, "register", registerPath, req)
}

// Login implements [AccountAdapter]. It POSTs req to POST /api/user/login.
func (h *httpAccountAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UpstreamResponse, error) {
	return h.forward(ctx, "login", loginPath, req)
}

func (h *httpAccountAdapter) forward(ctx context.Context, op, path string, body any) (models.UpstreamResponse, error) {
	resp, err := h.request(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		traceID, _ := utils.GetTraceIDFromContext(ctx)
		h.logger.Err(err).
			Str("func", "httpAccountAdapter."+op).
			Str("trace_id", traceID).
			Msg("account service request failed")
		return models.UpstreamResponse{}, mapTransportError(op+" request", err)
	}

	return toUpstreamResponse(resp), nil
}

func (h *httpAccountAdapter) request(ctx context.Context) *resty.Request {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok && traceID != "" {
		r.SetHeader(traceIDHeader, traceID)
	}

	return r
}

func toUpstreamResponse(resp *resty.Response) models.UpstreamResponse {
	return models.UpstreamResponse{
		Status:        resp.StatusCode(),
		Body:          resp.Body(),
		ContentType:   resp.Header().Get("Content-Type"),
		Authorization: resp.Header().Get("Authorization"),
	}
}
