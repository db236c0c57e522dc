package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-gate/internal/app"
	"github.com/MKhiriev/go-account-gate/internal/utils"
	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/MKhiriev/go-account-gate/models"
)

// failureResponse is the JSON body of every response the gateway itself
// rejects. Errors is only present for validation failures.
type failureResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  []validators.FieldError `json:"errors,omitempty"`
}

// writeValidationFailed writes the 400 validation response. errs is never
// empty when this is called.
func writeValidationFailed(w http.ResponseWriter, errs []validators.FieldError) {
	_, _ = utils.WriteJSON(w, failureResponse{
		Success: false,
		Message: app.MsgValidationFailed,
		Errors:  errs,
	}, http.StatusBadRequest)
}

func writeFailure(w http.ResponseWriter, statusCode int) {
	_, _ = utils.WriteJSON(w, failureResponse{
		Success: false,
		Message: http.StatusText(statusCode),
	}, statusCode)
}

// relayUpstream copies the account service answer to w.
func relayUpstream(w http.ResponseWriter, resp models.UpstreamResponse) error {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	if resp.Authorization != "" {
		w.Header().Set("Authorization", resp.Authorization)
	}

	w.WriteHeader(resp.Status)
	if len(resp.Body) == 0 {
		return nil
	}

	_, err := w.Write(resp.Body)
	return err
}
