package postgres

import (
	"database/sql"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/sqlutil"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// memberTeamRecord - строка members LEFT JOIN teams как она приходит из БД.
type memberTeamRecord struct {
	MemberID int64
	Username sql.NullString
	Age      int
	TeamID   sql.NullInt64
	TeamName sql.NullString
}

func scanMemberTeamRecord(s rowScanner) (memberTeamRecord, error) {
	var rec memberTeamRecord
	err := s.Scan(&rec.MemberID, &rec.Username, &rec.Age, &rec.TeamID, &rec.TeamName)
	return rec, err
}

// toMemberTeamRow - единственное место, где строка соединения превращается
// в MemberTeamRow. Отсутствующая команда остается nil.
func (r memberTeamRecord) toMemberTeamRow() *domain.MemberTeamRow {
	return &domain.MemberTeamRow{
		MemberID: r.MemberID,
		Username: sqlutil.FromSqlStringPtr(r.Username),
		Age:      r.Age,
		TeamID:   sqlutil.FromSqlInt64Ptr(r.TeamID),
		TeamName: sqlutil.FromSqlStringPtr(r.TeamName),
	}
}

const memberColumns = "m.id, m.username, m.age, m.team_id, m.created_at, m.updated_at"

func scanMember(s rowScanner) (*domain.Member, error) {
	var (
		username  sql.NullString
		teamID    sql.NullInt64
		updatedAt sql.NullTime
	)
	member := &domain.Member{}
	err := s.Scan(
		&member.ID,
		&username,
		&member.Age,
		&teamID,
		&member.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	member.Username = sqlutil.FromSqlStringPtr(username)
	member.TeamID = sqlutil.FromSqlInt64Ptr(teamID)
	member.UpdatedAt = sqlutil.FromSqlTime(updatedAt)
	return member, nil
}
