package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) SearchMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria, err := parseCriteria(q)
	if err != nil {
		h.handleError(w, err)
		return
	}
	orders, err := parseSort(q.Get("sort"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	page, err := parsePage(q)
	if err != nil {
		h.handleError(w, err)
		return
	}

	rows, err := h.memberService.Search(r.Context(), criteria, orders, page)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, SearchMembersResponse{
		Members: domainRowsToHTTP(rows),
		Offset:  page.Offset,
		Limit:   page.Limit,
	})
}

// ListMembers отдает всех участников или точные совпадения по ?username=
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	var (
		members []*domain.Member
		err     error
	)

	if q := r.URL.Query(); q.Has("username") {
		members, err = h.memberService.FindByUsername(r.Context(), q.Get("username"))
	} else {
		members, err = h.memberService.FindAll(r.Context())
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), &domain.Member{
		Username: req.Username,
		Age:      req.Age,
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

// FindOneMember принимает те же фильтры, что и поиск, и ждет ровно одну строку
func (h *Handler) FindOneMember(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		h.handleError(w, err)
		return
	}

	row, err := h.memberService.FindOne(r.Context(), criteria)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainRowToHTTP(row))
}

func (h *Handler) MemberUsernames(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		h.handleError(w, err)
		return
	}

	names, err := h.memberService.Usernames(r.Context(), criteria)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if names == nil {
		names = []*string{}
	}

	h.writeJSON(w, http.StatusOK, UsernamesResponse{Usernames: names})
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := memberIDFromPath(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}

func (h *Handler) ChangeTeam(w http.ResponseWriter, r *http.Request) {
	id, err := memberIDFromPath(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req ChangeTeamRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if !req.TeamID.Set {
		h.handleError(w, domain.NewInvalidArgumentError("team_id is required, use null to detach"))
		return
	}

	member, err := h.memberService.ChangeTeam(r.Context(), id, req.TeamID.Value)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}

func (h *Handler) BulkRename(w http.ResponseWriter, r *http.Request) {
	var req BulkRenameRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if req.BelowAge == nil || req.Username == nil {
		h.handleError(w, domain.NewInvalidArgumentError("below_age and username are required"))
		return
	}

	count, err := h.memberService.BulkUpdateUsername(r.Context(), *req.BelowAge, *req.Username)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, BulkResponse{Affected: count})
}

func (h *Handler) BulkIncrementAge(w http.ResponseWriter, r *http.Request) {
	var req BulkAgeRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if req.Delta == nil {
		h.handleError(w, domain.NewInvalidArgumentError("delta is required"))
		return
	}

	count, err := h.memberService.BulkIncrementAge(r.Context(), *req.Delta)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, BulkResponse{Affected: count})
}

func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if req.AboveAge == nil {
		h.handleError(w, domain.NewInvalidArgumentError("above_age is required"))
		return
	}

	count, err := h.memberService.BulkDelete(r.Context(), *req.AboveAge)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, BulkResponse{Affected: count})
}

func memberIDFromPath(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewInvalidArgumentError("invalid member id %q", raw)
	}
	return id, nil
}
