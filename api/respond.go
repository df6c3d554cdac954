package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rmonte/devfolio-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// errorEnvelope is the single error body shape used by every route.
type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error without
	// leaking the underlying message.
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unclassified error")
		r.WriteJSON(w, http.StatusInternalServerError, errorEnvelope{
			Error: errorDetail{
				Code:    errs.CodeInternal,
				Message: "an unexpected error occurred",
			},
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError && apiErr.Cause != nil {
		r.logger.Error().Err(apiErr.Cause).Msg(apiErr.Message())
	}

	r.WriteJSON(w, apiErr.StatusCode, errorEnvelope{
		Error: errorDetail{
			Code:    apiErr.Code,
			Message: apiErr.Message(),
		},
	})
}
