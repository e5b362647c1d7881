package merge

import (
	"fmt"
	"strings"

	"github.com/keboola/db-merge/internal/pkg/model"
	"github.com/keboola/db-merge/internal/pkg/storage"
)

const (
	// StagingAlias qualifies the staged snapshot in matching expressions and conditions.
	StagingAlias = "s"
	// TargetAlias qualifies the target table in matching expressions and conditions.
	TargetAlias = "t"
)

// matchingExpression returns the predicate deciding whether a staged row and
// a target row are the same entity. By default it is the equality of the key
// fields tuple. A custom expression replaces the default entirely, the caller
// is responsible for the "s"/"t" qualification.
func matchingExpression(d *model.Destination) string {
	if d.MatchingExpression != "" {
		return d.MatchingExpression
	}

	parts := make([]string, 0, len(d.KeyFields))
	for _, key := range d.KeyFields {
		q := storage.Quote(key)
		parts = append(parts, fmt.Sprintf("%s.%s = %s.%s", TargetAlias, q, StagingAlias, q))
	}
	return strings.Join(parts, " AND ")
}

// matchingConditions returns the matching expression followed by the
// configured conditions. The same fragments are used by the update statement
// and by the insert anti-join, so both phases see the identical predicate.
func matchingConditions(d *model.Destination) []string {
	out := []string{matchingExpression(d)}
	for _, cond := range d.Conditions {
		out = append(out, "("+cond+")")
	}
	return out
}
