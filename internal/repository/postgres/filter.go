package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"

	"github.com/google/uuid"
)

func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid lobby id", entities.ErrInvalidIdentifier, id)
	}
	return parsed.String(), nil
}

func filterColumn(f query.Field) string {
	switch f {
	case query.FieldID:
		return "id::text"
	case query.FieldCompany:
		return "company"
	default:
		return "lobby_name"
	}
}

// buildLobbyFilter renders predicates as a WHERE clause with positional args.
func buildLobbyFilter(filter query.Filter) (string, []any) {
	conditions := make([]string, 0, len(filter.Predicates))
	args := make([]any, 0, len(filter.Predicates))
	for _, p := range filter.Predicates {
		args = append(args, p.Value)
		placeholder := "$" + strconv.Itoa(len(args))
		switch p.Op {
		case query.OpMatches:
			conditions = append(conditions, filterColumn(p.Field)+" ~* "+placeholder)
		case query.OpEquals:
			conditions = append(conditions, filterColumn(p.Field)+" = "+placeholder)
		}
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Strings compare bytewise and NULL sorts as the smallest value, matching the document store.
func directionSQL(d query.Direction) (dir, nulls string) {
	if d == query.Descending {
		return "DESC", "NULLS LAST"
	}
	return "ASC", "NULLS FIRST"
}

func buildLobbyOrder(o query.Order) string {
	dir, nulls := directionSQL(o.Direction)
	switch o.Field {
	case query.FieldID:
		return "ORDER BY seq " + dir
	case query.FieldCompany:
		return fmt.Sprintf(`ORDER BY company COLLATE "C" %s %s, seq %s`, dir, nulls, dir)
	default:
		return fmt.Sprintf(`ORDER BY lobby_name COLLATE "C" %s, seq %s`, dir, dir)
	}
}

func buildGroupOrder(o query.GroupOrder) string {
	dir, nulls := directionSQL(o.Direction)
	if o.Key == query.GroupByCount {
		return fmt.Sprintf(`ORDER BY cnt %s, company COLLATE "C" %s %s`, dir, dir, nulls)
	}
	return fmt.Sprintf(`ORDER BY company COLLATE "C" %s %s`, dir, nulls)
}
