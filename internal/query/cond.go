// Package query собирает SQL для поиска участников из необязательных условий.
//
// Каждое условие (Cond) либо задает ограничение, либо отсутствует. Отсутствующие
// условия при свертке через And просто пропускаются, поэтому один и тот же
// запрос обслуживает любую комбинацию заполненных фильтров.
package query

import (
	"fmt"
	"strings"
)

type Op string

const (
	OpEq  Op = "="
	OpGoe Op = ">="
	OpLoe Op = "<="
	OpLt  Op = "<"
	OpGt  Op = ">"
)

// Expr - сравнение одного столбца с параметром.
type Expr struct {
	Column string
	Op     Op
	Value  any
}

// Cond - необязательное логическое условие. Нулевое значение означает
// отсутствие ограничения.
type Cond struct {
	exprs []Expr
}

func None() Cond {
	return Cond{}
}

func Where(column string, op Op, value any) Cond {
	return Cond{exprs: []Expr{{Column: column, Op: op, Value: value}}}
}

// Present сообщает, задает ли условие ограничение.
func (c Cond) Present() bool {
	return len(c.exprs) > 0
}

// And сворачивает условия в конъюнкцию. Отсутствующие условия пропускаются;
// если ни одно не задано, результат тоже отсутствует.
func And(conds ...Cond) Cond {
	var exprs []Expr
	for _, c := range conds {
		exprs = append(exprs, c.exprs...)
	}
	return Cond{exprs: exprs}
}

func (c Cond) And(other Cond) Cond {
	return And(c, other)
}

// Exprs возвращает копию сравнений в порядке добавления.
func (c Cond) Exprs() []Expr {
	out := make([]Expr, len(c.exprs))
	copy(out, c.exprs)
	return out
}

// SQL рендерит условие для WHERE. Плейсхолдеры нумеруются с argOffset+1.
// Для отсутствующего условия возвращается пустая строка.
func (c Cond) SQL(argOffset int) (string, []any) {
	if !c.Present() {
		return "", nil
	}

	parts := make([]string, 0, len(c.exprs))
	args := make([]any, 0, len(c.exprs))
	for i, e := range c.exprs {
		parts = append(parts, fmt.Sprintf("%s %s $%d", e.Column, e.Op, argOffset+i+1))
		args = append(args, e.Value)
	}
	return strings.Join(parts, " AND "), args
}
