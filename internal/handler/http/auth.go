package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/utils"
	"github.com/MKhiriev/go-account-gate/internal/validators"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, ok := utils.GetNormalizedPayloadFromContext(ctx)
	if !ok {
		log.Error().Msg("no normalized payload in context: register route is not behind validation")
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	resp, err := h.services.AccountService.Register(ctx, validators.RegisterRequestFromPayload(payload))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if err = relayUpstream(w, resp); err != nil {
		log.Err(err).Msg("relaying registration response failed")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, ok := utils.GetNormalizedPayloadFromContext(ctx)
	if !ok {
		log.Error().Msg("no normalized payload in context: login route is not behind validation")
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	resp, err := h.services.AccountService.Login(ctx, validators.LoginRequestFromPayload(payload))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if err = relayUpstream(w, resp); err != nil {
		log.Err(err).Msg("relaying login response failed")
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Info().
			Str("profile", validationErr.Profile).
			Int("errors", len(validationErr.Errors)).
			Msg("validation failed in service layer")
		writeValidationFailed(w, validationErr.Errors)
		return
	}

	status := statusFromError(err)
	log.Err(err).Int("status", status).Msg("account request failed")
	writeFailure(w, status)
}
