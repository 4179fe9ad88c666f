package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/service"
)

type Handler struct {
	memberService service.MemberService
	teamService   service.TeamService
	statsService  service.StatsService
}

func NewHandler(
	memberService service.MemberService,
	teamService service.TeamService,
	statsService service.StatsService,
) *Handler {
	return &Handler{
		memberService: memberService,
		teamService:   teamService,
		statsService:  statsService,
	}
}

func (h *Handler) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewInvalidArgumentError("invalid request body: %v", err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
