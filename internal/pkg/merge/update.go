package merge

import (
	"fmt"

	"github.com/keboola/db-merge/internal/pkg/model"
	"github.com/keboola/db-merge/internal/pkg/storage"
	"github.com/keboola/db-merge/internal/pkg/utils/errors"
)

// updateStrategy describes how a staged value is folded into the existing target value.
type updateStrategy int

const (
	// strategyAdd: target = COALESCE(target, 0) + staged, a missing target value counts as zero.
	strategyAdd updateStrategy = iota
	// strategyOverwrite: target takes the staged value, last write wins.
	strategyOverwrite
	// strategyConcatenate: target = staged + delimiter + target, the staged value comes first.
	strategyConcatenate
)

func strategyFor(category storage.TypeCategory) updateStrategy {
	switch category {
	case storage.TypeTemporal:
		return strategyOverwrite
	case storage.TypeTextual:
		return strategyConcatenate
	default:
		return strategyAdd
	}
}

// updateExpressions returns one assignment per increment field.
// An increment field missing from the table definition is a configuration error.
func updateExpressions(d *model.Destination, table storage.TableDefinition) ([]string, error) {
	result := errors.NewMultiError()
	out := make([]string, 0, len(d.IncrementFields))
	for _, field := range d.IncrementFields {
		columnType, found := table.ColumnType(field)
		if !found {
			result.Append(errors.Errorf(`cannot resolve type of increment field "%s" in table "%s"`, field, table.Name))
			continue
		}
		out = append(out, updateExpression(field, strategyFor(columnType.Category()), d.ValueDelimiter))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func updateExpression(field string, strategy updateStrategy, delimiter string) string {
	q := storage.Quote(field)
	target := TargetAlias + "." + q
	staged := StagingAlias + "." + q
	switch strategy {
	case strategyOverwrite:
		return fmt.Sprintf("%s = %s", target, staged)
	case strategyConcatenate:
		return fmt.Sprintf("%s = CONCAT_WS(%s, %s, %s)", target, storage.QuoteString(delimiter), staged, target)
	default:
		return fmt.Sprintf("%s = COALESCE(%s, 0) + %s", target, target, staged)
	}
}
