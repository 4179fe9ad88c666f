package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	created, err := h.teamService.CreateTeam(r.Context(), req.TeamName, httpMembersToDomain(req.Members))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateTeamResponse{
		Team: domainTeamToHTTP(created),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamName := mux.Vars(r)["name"]

	team, err := h.teamService.GetTeam(r.Context(), teamName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

// GetTeamMembers - только участники с командой (внутреннее соединение по имени)
func (h *Handler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListByTeamName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}
