// Package storage describes relations owned by the target database:
// table definitions, column types and identifier quoting.
package storage

import (
	"strings"
)

// TypeCategory drives the update strategy of an increment field, see the merge package.
type TypeCategory int

const (
	// TypeOther covers numeric and all remaining types, increment means addition.
	TypeOther TypeCategory = iota
	// TypeTemporal covers date/time types, increment means overwrite.
	TypeTemporal
	// TypeTextual covers character types, increment means delimiter concatenation.
	TypeTextual
)

// ColumnType is the declared storage type of a column, e.g. "int", "varchar(255)", "datetime".
type ColumnType string

// nolint: gochecknoglobals
var (
	temporalTypes = map[string]bool{
		"date": true, "datetime": true, "timestamp": true, "time": true, "year": true,
	}
	textualTypes = map[string]bool{
		"char": true, "varchar": true, "tinytext": true, "text": true,
		"mediumtext": true, "longtext": true, "string": true,
	}
)

// Category maps the declared type to the update-strategy category.
// The size/precision suffix, e.g. "(255)", is ignored.
func (t ColumnType) Category() TypeCategory {
	name := strings.ToLower(string(t))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	switch {
	case temporalTypes[name]:
		return TypeTemporal
	case textualTypes[name]:
		return TypeTextual
	default:
		return TypeOther
	}
}

type Column struct {
	Name string     `json:"name" validate:"required"`
	Type ColumnType `json:"type" validate:"required"`
}

// TableDefinition is metadata of a persistent table, the schema itself is owned externally.
type TableDefinition struct {
	Name    string   `json:"name" validate:"required"`
	Columns []Column `json:"columns" validate:"required,min=1,dive"`
}

func (d TableDefinition) QuotedName() string {
	return Quote(d.Name)
}

// ColumnType returns the declared type of the column, false if the column is unknown.
func (d TableDefinition) ColumnType(name string) (ColumnType, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c.Type, true
		}
	}
	return "", false
}

// Quote escapes an identifier with backticks.
func Quote(identifier string) string {
	return "`" + strings.ReplaceAll(identifier, "`", "``") + "`"
}

// QuoteString escapes a value as a single-quoted SQL string literal.
func QuoteString(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `''`)
	return "'" + value + "'"
}
