package auth

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Filter is an ordered list of exact-match constraints applied to store
// lookups. Columns are fixed by the constructors below so filters never
// interpolate caller-provided identifiers into SQL.
type Filter []FieldMatch

// FieldMatch is a single column = value constraint
type FieldMatch struct {
	Column string
	Value  any
}

// ByID filters on the primary key
func ByID(id uuid.UUID) Filter {
	return Filter{{Column: "id", Value: id}}
}

// ByLogin filters on the unique login column
func ByLogin(login string) Filter {
	return Filter{{Column: "login", Value: login}}
}

// ByGroup filters on the opaque group label
func ByGroup(group string) Filter {
	return Filter{{Column: "user_group", Value: group}}
}

// And appends another constraint, preserving order
func (f Filter) And(other Filter) Filter {
	return append(f, other...)
}

func (f Filter) applySelect(q *bun.SelectQuery) *bun.SelectQuery {
	for _, m := range f {
		q = q.Where("?TableAlias."+m.Column+" = ?", m.Value)
	}
	return q
}

func (f Filter) applyDelete(q *bun.DeleteQuery) *bun.DeleteQuery {
	for _, m := range f {
		q = q.Where("?TableAlias."+m.Column+" = ?", m.Value)
	}
	return q
}
