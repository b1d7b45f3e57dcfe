package query

// Direction is a sort direction.
type Direction int

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

// Order is a single-field ordering.
type Order struct {
	Field     Field
	Direction Direction
}

// GroupKey names what company summaries are ordered by.
type GroupKey string

const (
	// GroupByCompany orders summaries by company name.
	GroupByCompany GroupKey = "company"
	// GroupByCount orders summaries by lobby count.
	GroupByCount GroupKey = "count"
)

// GroupOrder orders company summaries.
type GroupOrder struct {
	Key       GroupKey
	Direction Direction
}

var sortFields = map[string]Field{
	"lobbyName": FieldLobbyName,
	"name":      FieldLobbyName,
	"company":   FieldCompany,
	"id":        FieldID,
	"_id":       FieldID,
}

// DefaultOrder is used when no sortby is given.
var DefaultOrder = Order{Field: FieldLobbyName, Direction: Ascending}

// BuildOrder maps sortby/sortorder to an ordering. Unknown fields fall back to lobbyName.
func BuildOrder(sortBy, sortOrder string) Order {
	field, ok := sortFields[sortBy]
	if !ok {
		field = DefaultOrder.Field
	}
	return Order{Field: field, Direction: parseDirection(sortOrder)}
}

// BuildGroupOrder maps sortBy/sortOrder to a company summary ordering.
func BuildGroupOrder(sortBy, sortOrder string) GroupOrder {
	key := GroupByCompany
	if sortBy == string(GroupByCount) {
		key = GroupByCount
	}
	return GroupOrder{Key: key, Direction: parseDirection(sortOrder)}
}

func parseDirection(s string) Direction {
	if s == "desc" {
		return Descending
	}
	return Ascending
}
