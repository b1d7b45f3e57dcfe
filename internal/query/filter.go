// Package query turns untrusted request parameters into store-agnostic filters and orderings.
package query

import (
	"fmt"
	"regexp"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
)

// Field names a sortable or filterable lobby attribute.
type Field string

const (
	// FieldID orders by store id, which follows insertion order.
	FieldID Field = "id"
	// FieldLobbyName is the lobby display name.
	FieldLobbyName Field = "lobbyName"
	// FieldCompany is the owning company.
	FieldCompany Field = "company"
)

// Op is a predicate operator.
type Op int

const (
	// OpMatches is a case-insensitive regular expression match.
	OpMatches Op = iota
	// OpEquals is an exact string match.
	OpEquals
)

// Predicate is a single condition on a lobby field.
type Predicate struct {
	Field Field
	Op    Op
	// Value is the raw parameter value forwarded to the store.
	Value string
	// Pattern is set for OpMatches and used for in-memory evaluation.
	Pattern *regexp.Regexp
}

// Filter is a conjunction of predicates. The zero value matches every lobby.
type Filter struct {
	Predicates []Predicate
}

// IsEmpty reports whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return len(f.Predicates) == 0
}

// Matches evaluates the filter against a lobby.
func (f Filter) Matches(l entities.Lobby) bool {
	for _, p := range f.Predicates {
		if !p.matches(l) {
			return false
		}
	}
	return true
}

func (p Predicate) matches(l entities.Lobby) bool {
	var (
		value   string
		present bool
	)
	switch p.Field {
	case FieldLobbyName:
		value, present = l.Name, true
	case FieldCompany:
		if l.Company != nil {
			value, present = *l.Company, true
		}
	case FieldID:
		value, present = l.ID, true
	}
	if !present {
		return false
	}

	switch p.Op {
	case OpMatches:
		return p.Pattern != nil && p.Pattern.MatchString(value)
	case OpEquals:
		return value == p.Value
	default:
		return false
	}
}

type paramBuilder struct {
	name  string
	build func(value string) (Predicate, error)
}

// params lists recognised query parameters in evaluation order.
var params = []paramBuilder{
	{name: "lobbyName", build: matchesCI(FieldLobbyName)},
	{name: "company", build: equals(FieldCompany)},
}

// BuildFilter builds a conjunctive filter from query parameters. Unrecognised parameters are ignored.
func BuildFilter(values map[string]string) (Filter, error) {
	f := Filter{}
	for _, p := range params {
		v, ok := values[p.name]
		if !ok {
			continue
		}
		pred, err := p.build(v)
		if err != nil {
			return Filter{}, err
		}
		f.Predicates = append(f.Predicates, pred)
	}
	return f, nil
}

func matchesCI(field Field) func(string) (Predicate, error) {
	return func(value string) (Predicate, error) {
		re, err := regexp.Compile("(?i)" + value)
		if err != nil {
			return Predicate{}, fmt.Errorf("%w: %s is not a valid pattern", entities.ErrInvalidArgument, field)
		}
		return Predicate{Field: field, Op: OpMatches, Value: value, Pattern: re}, nil
	}
}

func equals(field Field) func(string) (Predicate, error) {
	return func(value string) (Predicate, error) {
		return Predicate{Field: field, Op: OpEquals, Value: value}, nil
	}
}
