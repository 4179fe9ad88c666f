package handler

import (
	"github.com/bagdasarian/member-search/internal/domain"
)

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID: member.ID,
		Username: member.Username,
		Age:      member.Age,
		TeamID:   member.TeamID,
	}
}

func domainTeamToHTTP(tm *domain.TeamMembers) TeamResponse {
	members := make([]MemberResponse, 0, len(tm.Members))
	for _, member := range tm.Members {
		members = append(members, domainMemberToHTTP(member))
	}

	return TeamResponse{
		TeamID:   tm.Team.ID,
		TeamName: tm.Team.Name,
		Members:  members,
	}
}

func httpMembersToDomain(req []MemberRequest) []*domain.Member {
	members := make([]*domain.Member, 0, len(req))
	for _, m := range req {
		members = append(members, &domain.Member{
			Username: m.Username,
			Age:      m.Age,
		})
	}
	return members
}

func domainRowsToHTTP(rows []*domain.MemberTeamRow) []MemberTeamResponse {
	result := make([]MemberTeamResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, domainRowToHTTP(row))
	}
	return result
}

func domainRowToHTTP(row *domain.MemberTeamRow) MemberTeamResponse {
	return MemberTeamResponse{
		MemberID: row.MemberID,
		Username: row.Username,
		Age:      row.Age,
		TeamID:   row.TeamID,
		TeamName: row.TeamName,
	}
}

func domainMembersToHTTP(members []*domain.Member) MembersResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return MembersResponse{Members: result}
}
