package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-gate/internal/adapter"
	"github.com/MKhiriev/go-account-gate/internal/mock"
	"github.com/MKhiriev/go-account-gate/internal/service"
	"github.com/MKhiriev/go-account-gate/internal/utils"
	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/MKhiriev/go-account-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// normalizedRequest builds a POST to path whose context carries the payload
// the validation middleware would have stored.
func normalizedRequest(path string, pairs ...string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	return req.WithContext(utils.WithNormalizedPayload(req.Context(), validators.NewPayload(pairs...)))
}

func TestRegister_RelaysUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	h := newTestHandler(accounts)

	want := models.RegisterRequest{FirstName: "John", EmailID: "john@example.com", Password: "Passw0rd!"}
	accounts.EXPECT().Register(gomock.Any(), want).Return(models.UpstreamResponse{
		Status:        http.StatusCreated,
		Body:          []byte(`{"success":true}`),
		ContentType:   "application/json",
		Authorization: "Bearer abc",
	}, nil)

	req := normalizedRequest("/api/user/register",
		"firstName", "John", "emailId", "john@example.com", "password", "Passw0rd!")
	rr := httptest.NewRecorder()
	h.register(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer abc", rr.Header().Get("Authorization"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}

func TestLogin_RelaysUpstreamRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	h := newTestHandler(accounts)

	accounts.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.UpstreamResponse{
		Status: http.StatusUnauthorized,
	}, nil)

	rr := httptest.NewRecorder()
	h.login(rr, normalizedRequest("/api/user/login", "emailId", "a@b.io", "password", "x"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestLogin_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "account service down",
			err:        adapter.ErrUpstreamUnavailable,
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"success":false,"message":"Bad Gateway"}`,
		},
		{
			name:       "account service slow",
			err:        adapter.ErrUpstreamTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"success":false,"message":"Gateway Timeout"}`,
		},
		{
			name: "service-level validation",
			err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, &validators.ValidationError{
				Profile: validators.ProfileLogin,
				Errors: []validators.FieldError{
					{Field: "emailId", Message: "Invalid email address"},
				},
			}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Validation failed","errors":[{"field":"emailId","message":"Invalid email address"}]}`,
		},
		{
			name:       "unexpected",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := mock.NewMockAccountService(ctrl)
			h := newTestHandler(accounts)

			accounts.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.UpstreamResponse{}, tt.err)

			rr := httptest.NewRecorder()
			h.login(rr, normalizedRequest("/api/user/login", "emailId", "a@b.io", "password", "x"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestAccountRoutes_WithoutNormalizedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newTestHandler(mock.NewMockAccountService(ctrl))

	for name, handle := range map[string]http.HandlerFunc{"register": h.register, "login": h.login} {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handle(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"emailId":"a@b.io"}`)))

			require.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"success":false,"message":"Internal Server Error"}`, rr.Body.String())
		})
	}
}

// Only the normalized values reach the service, even when the route sees a
// raw body.
func TestRegister_ThroughRouterUsesNormalizedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	h := newTestHandler(accounts)

	accounts.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		FirstName: "John",
		EmailID:   "john@example.com",
		Password:  " Pa&lt;ssw0rd",
	}).Return(models.UpstreamResponse{Status: http.StatusCreated}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register",
		strings.NewReader(`{"firstName":" John ","emailId":"john@example.com ","password":" Pa<ssw0rd"}`))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

// The trace ID set by withTraceID reaches the service context.
func TestLogin_ContextCarriesTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	h := newTestHandler(accounts)

	accounts.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.LoginRequest) (models.UpstreamResponse, error) {
			id, _ := utils.GetTraceIDFromContext(ctx)
			assert.Equal(t, "trace-42", id)
			return models.UpstreamResponse{Status: http.StatusOK}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"emailId":"a@b.io","password":"x"}`))
	req.Header.Set(traceIDHeader, "trace-42")

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
