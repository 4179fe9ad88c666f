package handler

import (
	"net/http"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.GetAgeSummary(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	byTeam, err := h.statsService.GetAverageAgeByTeam(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := StatsResponse{
		Ages: AgeSummaryResponse{
			Count: summary.Count,
			Sum:   summary.Sum,
			Avg:   summary.Avg,
			Max:   summary.Max,
			Min:   summary.Min,
		},
		ByTeam: make([]TeamAgeStatResponse, len(byTeam)),
	}

	for i, stat := range byTeam {
		response.ByTeam[i] = TeamAgeStatResponse{
			TeamName:   stat.TeamName,
			AverageAge: stat.AverageAge,
		}
	}

	h.writeJSON(w, http.StatusOK, response)
}
