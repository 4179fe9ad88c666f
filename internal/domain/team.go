package domain

import "time"

// Team хранит только собственные поля; участники команды получаются запросом
// по members.team_id, а не обратной коллекцией.
type Team struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type TeamMembers struct {
	Team    *Team
	Members []*Member
}
