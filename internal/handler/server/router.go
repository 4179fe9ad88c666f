package server

import (
	"github.com/gorilla/mux"

	"github.com/bagdasarian/member-search/internal/handler"
)

func SetupRoutes(r *mux.Router, h *handler.Handler) {
	r.HandleFunc("/health", h.Health).Methods("GET")

	r.HandleFunc("/members", h.ListMembers).Methods("GET")
	r.HandleFunc("/members", h.CreateMember).Methods("POST")

	members := r.PathPrefix("/members").Subrouter()
	members.HandleFunc("/search", h.SearchMembers).Methods("GET")
	members.HandleFunc("/one", h.FindOneMember).Methods("GET")
	members.HandleFunc("/usernames", h.MemberUsernames).Methods("GET")
	members.HandleFunc("/bulk/rename", h.BulkRename).Methods("POST")
	members.HandleFunc("/bulk/age", h.BulkIncrementAge).Methods("POST")
	members.HandleFunc("/bulk/delete", h.BulkDelete).Methods("POST")
	members.HandleFunc("/{id:[0-9]+}", h.GetMember).Methods("GET")
	members.HandleFunc("/{id:[0-9]+}/team", h.ChangeTeam).Methods("POST")

	r.HandleFunc("/teams", h.CreateTeam).Methods("POST")
	r.HandleFunc("/teams/{name}", h.GetTeam).Methods("GET")
	r.HandleFunc("/teams/{name}/members", h.GetTeamMembers).Methods("GET")
	r.HandleFunc("/stats", h.GetStats).Methods("GET")
}
