// Package model contains the destination configuration for the merge planner.
package model

import (
	"context"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/keboola/db-merge/internal/pkg/utils/errors"
	"github.com/keboola/db-merge/internal/pkg/validator"
)

// DefaultValueDelimiter joins textual increment values, see Destination.ValueDelimiter.
const DefaultValueDelimiter = ","

// Destination describes how staged source data is reconciled into a target table.
// All field names refer to the target table, FieldsMap resolves the source side.
type Destination struct {
	// Fields are the target table fields to write, in order.
	Fields []string `json:"fields" validate:"required,min=1"`
	// KeyFields tuple equality defines row identity, unless MatchingExpression is set.
	KeyFields []string `json:"key_fields,omitempty"`
	// IncrementFields values are combined with the staged values on update instead of overwritten.
	// If empty, the merge runs in insert-only mode.
	IncrementFields []string `json:"increment_fields,omitempty"`
	// FieldsMap maps a target field to a differently named source field.
	// Fields not present in the map share the name with the source.
	FieldsMap *orderedmap.OrderedMap `json:"fields_map,omitempty"`
	// GroupBy aggregates the staged snapshot by the source fields.
	GroupBy []string `json:"group_by,omitempty"`
	// Conditions are trusted SQL fragments ANDed into the staged/target matching.
	Conditions []string `json:"conditions,omitempty"`
	// SourceConditions are trusted SQL fragments ANDed into the staged snapshot filter.
	SourceConditions []string `json:"source_conditions,omitempty"`
	// MatchingExpression replaces the default key-fields predicate entirely.
	MatchingExpression string `json:"matching_expr,omitempty"`
	// ValueDelimiter joins textual increment values, DefaultValueDelimiter if empty.
	ValueDelimiter string `json:"value_delimiter,omitempty"`
}

// Normalize fills in default values, so a Destination decoded from JSON is directly usable.
func (d *Destination) Normalize() {
	if d.ValueDelimiter == "" {
		d.ValueDelimiter = DefaultValueDelimiter
	}
}

// SourceField returns the source field the target field is loaded from.
// Fields without a FieldsMap entry map to the same name.
func (d *Destination) SourceField(targetField string) string {
	if d.FieldsMap != nil {
		if v, found := d.FieldsMap.Get(targetField); found {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return targetField
}

// Validate checks the configuration, all violations are collected into one error.
func (d *Destination) Validate(ctx context.Context) error {
	result := errors.NewMultiError()
	if err := validator.New().Validate(ctx, d); err != nil {
		result.Append(err)
	}

	if len(d.KeyFields) == 0 && d.MatchingExpression == "" {
		result.Append(errors.New(`"key_fields" must be set if "matching_expr" is not used`))
	}

	fields := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		fields[f] = true
	}
	for _, f := range d.KeyFields {
		if !fields[f] {
			result.Append(errors.Errorf(`key field "%s" not found in "fields"`, f))
		}
	}
	for _, f := range d.IncrementFields {
		if !fields[f] {
			result.Append(errors.Errorf(`increment field "%s" not found in "fields"`, f))
		}
	}

	return result.ErrorOrNil()
}

// InsertOnly returns true if no increment fields are declared.
// In that mode staged rows are inserted without any existence check.
func (d *Destination) InsertOnly() bool {
	return len(d.IncrementFields) == 0
}
