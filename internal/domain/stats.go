package domain

// AgeSummary - агрегаты по возрасту всех участников.
type AgeSummary struct {
	Count int64
	Sum   int64
	Avg   float64
	Max   int
	Min   int
}

type TeamAgeStat struct {
	TeamName   string
	AverageAge float64
}
