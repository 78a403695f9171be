package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PetCalendar_Go/internal/logger"
	"github.com/osse101/PetCalendar_Go/internal/middleware"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the HTTP response has already been written and the
// handler should return.
//
//	var req FeedRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Feed"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requireUser returns the identity placed in the context by the identity
// middleware. A missing identity writes 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := middleware.GetUserID(r.Context())
	if username == middleware.EmptyUserID {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthenticated)
		return "", false
	}
	return username, true
}

// GetQueryParam retrieves a required query parameter. If it is missing the
// response has already been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Debug(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// getIntParam parses an integer from a query parameter, or a chi URL
// parameter when fromPath is set.
func getIntParam(r *http.Request, w http.ResponseWriter, name string, fromPath bool) (int, bool) {
	var raw string
	if fromPath {
		raw = chi.URLParam(r, name)
	} else {
		var ok bool
		if raw, ok = GetQueryParam(r, w, name); !ok {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return n, true
}

// handleUserAction is the common shape of a mutating endpoint: resolve the
// user, decode and validate REQ, call the service and encode its result.
func handleUserAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	status int,
	action func(ctx context.Context, username string, req REQ) (RES, error),
) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), username, req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, status, res)
}

// handleUserQuery is handleUserAction for endpoints without a body.
func handleUserQuery[RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	query func(ctx context.Context, username string) (RES, error),
) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	res, err := query(r.Context(), username)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}
