package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	if domain.IsStoreUnavailable(err) {
		log.Error().Err(err).Msg("store unavailable")
		h.writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{
				Code:    domain.ErrStoreUnavailable.Code,
				Message: domain.ErrStoreUnavailable.Message,
			},
		})
		return
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		h.writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	log.Error().Err(err).Msg("internal error")
	h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "BAD_REQUEST", "TEAM_EXISTS":
		return http.StatusBadRequest
	case "AMBIGUOUS_RESULT":
		return http.StatusConflict
	case "NOT_FOUND", "NO_RESULT":
		return http.StatusNotFound
	case "STORE_UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
