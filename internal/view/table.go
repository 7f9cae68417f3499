package view

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shelter-admin/service-shelter-web/internal/domain/report"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

// Cell is one table cell. A non-empty Class wraps the text in a styled span.
type Cell struct {
	Text  string
	Class string
}

// Action is a row button. Name is the role marker the container's single
// action endpoint dispatches on; Fields travel with it as hidden inputs.
type Action struct {
	Name   string
	Label  string
	Class  string
	Fields map[string]string
}

// Row is one table body row.
type Row struct {
	ID      string
	Cells   []Cell
	Actions []Action
}

// Table is a rendered list. ActionURL is where every row action posts.
type Table struct {
	Headers   []string
	Rows      []Row
	ActionURL string
}

// CardLine is one line of a card; Class styles Text only.
type CardLine struct {
	Prefix string
	Text   string
	Class  string
}

// Card is a list entry rendered as a box instead of a table row.
type Card struct {
	Title string
	Lines []CardLine
}

// Region is the content of one page container: exactly one of Error, Table,
// Cards or the Empty message is shown.
type Region struct {
	ID    string
	Table *Table
	Cards []Card
	Empty string
	Error string
}

// ErrorRegion shows err in the container as "<prefix><message>".
func ErrorRegion(id, prefix string, err error) Region {
	return Region{ID: id, Error: prefix + httpclient.Message(err)}
}

// TableRegion shows t, or the empty message when t has no rows.
func TableRegion(id string, t *Table, empty string) Region {
	if t == nil || len(t.Rows) == 0 {
		return Region{ID: id, Empty: empty}
	}
	return Region{ID: id, Table: t}
}

// Projection builds a table from opaque records by taking keys in order.
// Headers and keys are parallel; record order is preserved.
func Projection(headers, keys []string, rows []report.Row) *Table {
	t := &Table{Headers: headers, Rows: make([]Row, 0, len(rows))}
	for _, rec := range rows {
		cells := make([]Cell, len(keys))
		for i, key := range keys {
			cells[i] = Cell{Text: FormatValue(key, rec[key])}
		}
		t.Rows = append(t.Rows, Row{Cells: cells})
	}
	return t
}

// FormatValue renders v for column key: salary and amount get two fixed
// decimals, everything else its plain value.
func FormatValue(key string, v any) string {
	if key == "salary" || key == "amount" {
		return FixedPoint(v)
	}
	return Raw(v)
}

// Raw renders a decoded JSON value as plain text. Null and missing values render empty.
func Raw(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// FixedPoint renders a number, or a numeric string, with two decimals.
// Anything that is not a number renders as NaN.
func FixedPoint(v any) string {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return "NaN"
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return "NaN"
		}
		f = parsed
	default:
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
