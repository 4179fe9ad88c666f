package domain

// SearchCriteria - набор необязательных условий поиска участников.
// nil означает "без ограничения", а не "пустое значение".
type SearchCriteria struct {
	Username *string
	TeamName *string
	AgeGoe   *int
	AgeLoe   *int
}

// MemberTeamRow - проекция участника, соединенного LEFT JOIN с командой.
// TeamID и TeamName равны nil, если у участника нет команды.
type MemberTeamRow struct {
	MemberID int64
	Username *string
	Age      int
	TeamID   *int64
	TeamName *string
}

type SortField string

const (
	SortByMemberID SortField = "member_id"
	SortByUsername SortField = "username"
	SortByAge      SortField = "age"
	SortByTeamName SortField = "team_name"
)

type Order struct {
	Field     SortField
	Desc      bool
	NullsLast bool
}

// Page задает смещение и размер страницы. Limit <= 0 означает без ограничения.
type Page struct {
	Offset int
	Limit  int
}

func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func Int64Ptr(i int64) *int64 { return &i }
