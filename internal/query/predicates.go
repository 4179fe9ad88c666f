package query

import (
	"strings"

	"github.com/bagdasarian/member-search/internal/domain"
)

const (
	ColMemberID = "m.id"
	ColUsername = "m.username"
	ColAge      = "m.age"
	ColTeamID   = "t.id"
	ColTeamName = "t.name"
)

// hasText: nil и строка только из пробельных символов считаются пустыми.
func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// UsernameEq - точное совпадение имени с учетом регистра.
func UsernameEq(username *string) Cond {
	if !hasText(username) {
		return None()
	}
	return Where(ColUsername, OpEq, *username)
}

func TeamNameEq(teamName *string) Cond {
	if !hasText(teamName) {
		return None()
	}
	return Where(ColTeamName, OpEq, *teamName)
}

// AgeGoe - нижняя граница возраста включительно.
func AgeGoe(age *int) Cond {
	if age == nil {
		return None()
	}
	return Where(ColAge, OpGoe, *age)
}

// AgeLoe - верхняя граница возраста включительно.
func AgeLoe(age *int) Cond {
	if age == nil {
		return None()
	}
	return Where(ColAge, OpLoe, *age)
}

func AgeLt(age int) Cond {
	return Where(ColAge, OpLt, age)
}

func AgeGt(age int) Cond {
	return Where(ColAge, OpGt, age)
}

// Criteria сворачивает все фильтры критериев в одно условие.
// ageGoe > ageLoe не считается ошибкой: такой запрос просто ничего не находит.
func Criteria(c domain.SearchCriteria) Cond {
	return And(
		UsernameEq(c.Username),
		TeamNameEq(c.TeamName),
		AgeGoe(c.AgeGoe),
		AgeLoe(c.AgeLoe),
	)
}
