// Package merge plans the reconciliation of staged source data into a target table.
//
// The generated script has a stable statement order:
// stage snapshot -> update matched + insert unmatched (or plain insert) -> drop snapshot.
package merge

import (
	"github.com/keboola/db-merge/internal/pkg/model"
)

// FieldMapping is one resolved target field and the source field it is loaded from.
type FieldMapping struct {
	Target string
	Source string
}

// fieldMapping resolves the destination fields against the fields map,
// the order of the destination fields is preserved.
func fieldMapping(d *model.Destination) []FieldMapping {
	out := make([]FieldMapping, 0, len(d.Fields))
	for _, target := range d.Fields {
		out = append(out, FieldMapping{Target: target, Source: d.SourceField(target)})
	}
	return out
}
