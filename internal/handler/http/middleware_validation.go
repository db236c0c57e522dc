// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/utils"
	"github.com/MKhiriev/go-account-gate/internal/validators"
)

// validate returns middleware that checks the request body against v.
//
// A body that fails validation is answered with 400 and the collected field
// errors; next is not called. Otherwise the normalized payload is stored in
// the request context and replaces the body, so downstream handlers only
// ever see normalized values. Malformed JSON is validated as an empty
// payload.
func (h *Handler) validate(v validators.PayloadValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			body, err := h.readBody(w, r)
			if err != nil {
				log.Err(err).Str("profile", v.Name()).Msg("request body rejected")
				writeFailure(w, statusFromError(err))
				return
			}

			payload := validators.DecodePayload(bytes.NewReader(body))
			outcome := v.Validate(payload)
			if !outcome.OK() {
				log.Info().
					Str("profile", v.Name()).
					Int("fields", payload.Len()).
					Int("errors", len(outcome.Errors)).
					Msg("validation failed")
				writeValidationFailed(w, outcome.Errors)
				return
			}

			normalized, err := json.Marshal(outcome.Normalized)
			if err != nil {
				log.Err(err).Str("profile", v.Name()).Msg("normalized payload could not be encoded")
				writeFailure(w, http.StatusInternalServerError)
				return
			}

			log.Debug().Str("profile", v.Name()).Msg("validation passed")

			r = r.WithContext(utils.WithNormalizedPayload(r.Context(), outcome.Normalized))
			r.Body = io.NopCloser(bytes.NewReader(normalized))
			r.ContentLength = int64(len(normalized))
			r.Header.Set("Content-Length", strconv.Itoa(len(normalized)))

			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	reader := r.Body
	if h.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadableRequestBody, err)
	}

	return body, nil
}
