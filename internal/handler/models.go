package handler

import "encoding/json"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MemberRequest struct {
	Username *string `json:"username"`
	Age      int     `json:"age"`
}

type TeamRequest struct {
	TeamName string          `json:"team_name"`
	Members  []MemberRequest `json:"members"`
}

type MemberResponse struct {
	MemberID int64   `json:"member_id"`
	Username *string `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
}

type TeamResponse struct {
	TeamID   int64            `json:"team_id"`
	TeamName string           `json:"team_name"`
	Members  []MemberResponse `json:"members"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type MemberTeamResponse struct {
	MemberID int64   `json:"member_id"`
	Username *string `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
	TeamName *string `json:"team_name"`
}

type SearchMembersResponse struct {
	Members []MemberTeamResponse `json:"members"`
	Offset  int                  `json:"offset"`
	Limit   int                  `json:"limit"`
}

type ChangeTeamRequest struct {
	TeamID optionalTeamID `json:"team_id"`
}

// optionalTeamID отличает отсутствующий team_id от явного null
type optionalTeamID struct {
	Set   bool
	Value *int64
}

func (o *optionalTeamID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// Поля массовых операций обязательны: нулевое значение по умолчанию
// меняет смысл запроса.

type BulkRenameRequest struct {
	BelowAge *int    `json:"below_age"`
	Username *string `json:"username"`
}

type BulkAgeRequest struct {
	Delta *int `json:"delta"`
}

type BulkDeleteRequest struct {
	AboveAge *int `json:"above_age"`
}

type BulkResponse struct {
	Affected int64 `json:"affected"`
}

type AgeSummaryResponse struct {
	Count int64   `json:"count"`
	Sum   int64   `json:"sum"`
	Avg   float64 `json:"avg"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
}

type TeamAgeStatResponse struct {
	TeamName   string  `json:"team_name"`
	AverageAge float64 `json:"average_age"`
}

type StatsResponse struct {
	Ages   AgeSummaryResponse    `json:"ages"`
	ByTeam []TeamAgeStatResponse `json:"by_team"`
}

type CreateMemberRequest struct {
	Username *string `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
}

type MembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type UsernamesResponse struct {
	Usernames []*string `json:"usernames"`
}
