package merge

import (
	"context"
	"fmt"
	"strings"

	"github.com/keboola/db-merge/internal/pkg/idgenerator"
	"github.com/keboola/db-merge/internal/pkg/log"
	"github.com/keboola/db-merge/internal/pkg/model"
	"github.com/keboola/db-merge/internal/pkg/sql"
	"github.com/keboola/db-merge/internal/pkg/storage"
)

// Executor runs a generated script, see the db package for the default implementation.
// SQL fragments in the script are trusted text, only the named parameters are sanitized.
type Executor interface {
	Exec(ctx context.Context, script string, params map[string]any) error
}

type Planner struct {
	logger log.Logger
}

func NewPlanner(logger log.Logger) *Planner {
	return &Planner{logger: logger}
}

// Plan is the ordered statement script of one merge invocation.
type Plan struct {
	// StagingTable holds the snapshot of the source data, its lifetime is this one merge.
	StagingTable string
	Statements   []string
}

// Script returns all statements as one executable script.
func (p *Plan) Script() string {
	return sql.Join(p.Statements)
}

// Plan builds the merge script for the destination configuration.
// The statement order is a stable contract:
// stage -> (update -> insert) | (insert) -> release.
// No statement is produced if the configuration is invalid.
func (p *Planner) Plan(ctx context.Context, d *model.Destination, sourceTable string, table storage.TableDefinition) (*Plan, error) {
	d.Normalize()
	if err := d.Validate(ctx); err != nil {
		return nil, err
	}

	updates, err := updateExpressions(d, table)
	if err != nil {
		return nil, err
	}

	stagingTable := fmt.Sprintf("%s__merge_%s", sourceTable, idgenerator.StagingTableToken())
	plan := &Plan{StagingTable: stagingTable}
	plan.Statements = append(plan.Statements, stageStatement(d, sourceTable, stagingTable))
	if d.InsertOnly() {
		// No increment fields: every staged row is inserted, there is no
		// existence check, a repeated run inserts the rows again.
		plan.Statements = append(plan.Statements, insertAllStatement(d, stagingTable, table))
	} else {
		plan.Statements = append(plan.Statements,
			updateStatement(d, stagingTable, table, updates),
			insertUnmatchedStatement(d, stagingTable, table),
		)
	}
	plan.Statements = append(plan.Statements, dropStatement(stagingTable))

	for _, stm := range plan.Statements {
		p.logger.Debugf("Planned statement: %s", log.Sanitize(stm))
	}
	return plan, nil
}

// Run plans the merge and hands the script to the executor.
// The update and insert phases must run as one atomic unit, the executor
// guarantees that by running the whole script in one transaction.
func (p *Planner) Run(ctx context.Context, d *model.Destination, sourceTable string, table storage.TableDefinition, executor Executor, params map[string]any) error {
	plan, err := p.Plan(ctx, d, sourceTable, table)
	if err != nil {
		return err
	}
	p.logger.Infof(`Merging "%s" into "%s"`, sourceTable, table.Name)
	return executor.Exec(ctx, plan.Script(), params)
}

// stageStatement snapshots the mapped, filtered and optionally grouped source data.
// The staging table columns are named by the target fields.
func stageStatement(d *model.Destination, sourceTable, stagingTable string) string {
	projection := make([]string, 0, len(d.Fields))
	for _, m := range fieldMapping(d) {
		if m.Source == m.Target {
			projection = append(projection, storage.Quote(m.Source))
		} else {
			projection = append(projection, storage.Quote(m.Source)+" AS "+storage.Quote(m.Target))
		}
	}

	var out strings.Builder
	out.WriteString("CREATE TEMPORARY TABLE " + storage.Quote(stagingTable) + " AS\n")
	out.WriteString("SELECT " + strings.Join(projection, ", ") + "\n")
	out.WriteString("FROM " + storage.Quote(sourceTable))
	if len(d.SourceConditions) > 0 {
		conditions := make([]string, 0, len(d.SourceConditions))
		for _, cond := range d.SourceConditions {
			conditions = append(conditions, "("+cond+")")
		}
		out.WriteString("\nWHERE " + strings.Join(conditions, " AND "))
	}
	if len(d.GroupBy) > 0 {
		groups := make([]string, 0, len(d.GroupBy))
		for _, field := range d.GroupBy {
			groups = append(groups, storage.Quote(field))
		}
		out.WriteString("\nGROUP BY " + strings.Join(groups, ", "))
	}
	return out.String()
}

// updateStatement folds staged values into all matching target rows.
func updateStatement(d *model.Destination, stagingTable string, table storage.TableDefinition, updates []string) string {
	return fmt.Sprintf(
		"UPDATE %s AS %s\nJOIN %s AS %s ON %s\nSET %s",
		table.QuotedName(), TargetAlias,
		storage.Quote(stagingTable), StagingAlias,
		strings.Join(matchingConditions(d), " AND "),
		strings.Join(updates, ", "),
	)
}

// insertUnmatchedStatement inserts staged rows for which the update phase
// found no matching target row, the anti-join reuses the same predicate.
func insertUnmatchedStatement(d *model.Destination, stagingTable string, table storage.TableDefinition) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s)\nSELECT %s\nFROM %s AS %s\nWHERE NOT EXISTS (SELECT 1 FROM %s AS %s WHERE %s)",
		table.QuotedName(), insertFieldList(d),
		stagedFieldList(d),
		storage.Quote(stagingTable), StagingAlias,
		table.QuotedName(), TargetAlias,
		strings.Join(matchingConditions(d), " AND "),
	)
}

// insertAllStatement inserts every staged row, it is used in the insert-only mode.
func insertAllStatement(d *model.Destination, stagingTable string, table storage.TableDefinition) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s)\nSELECT %s\nFROM %s AS %s",
		table.QuotedName(), insertFieldList(d),
		stagedFieldList(d),
		storage.Quote(stagingTable), StagingAlias,
	)
}

func dropStatement(stagingTable string) string {
	return "DROP TEMPORARY TABLE IF EXISTS " + storage.Quote(stagingTable)
}

func insertFieldList(d *model.Destination) string {
	fields := make([]string, 0, len(d.Fields))
	for _, field := range d.Fields {
		fields = append(fields, storage.Quote(field))
	}
	return strings.Join(fields, ", ")
}

func stagedFieldList(d *model.Destination) string {
	fields := make([]string, 0, len(d.Fields))
	for _, field := range d.Fields {
		fields = append(fields, StagingAlias+"."+storage.Quote(field))
	}
	return strings.Join(fields, ", ")
}
