package domain

import "time"

type Member struct {
	ID        int64
	Username  *string
	Age       int
	TeamID    *int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewMember создает участника без команды. Пустое имя сохраняется как NULL.
func NewMember(username string, age int) *Member {
	m := &Member{Age: age}
	if username != "" {
		m.Username = &username
	}
	return m
}

// ChangeTeam переназначает команду участника. nil отвязывает участника.
func (m *Member) ChangeTeam(teamID *int64) {
	if teamID == nil {
		m.TeamID = nil
		return
	}
	id := *teamID
	m.TeamID = &id
}

// Name возвращает имя участника или пустую строку для NULL.
func (m *Member) Name() string {
	if m.Username == nil {
		return ""
	}
	return *m.Username
}
