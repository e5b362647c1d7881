// Package db executes generated scripts against a live connection.
package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/umisama/go-regexpcache"

	"github.com/keboola/db-merge/internal/pkg/log"
	sqlutil "github.com/keboola/db-merge/internal/pkg/sql"
	"github.com/keboola/db-merge/internal/pkg/storage"
	"github.com/keboola/db-merge/internal/pkg/utils/errors"
)

// placeholder is a named parameter inside a SQL fragment, e.g. ":since".
const placeholderRegexp = `:[a-zA-Z_][a-zA-Z0-9_]*`

// Executor runs a whole script in one transaction.
// Named parameters are substituted as sanitized literals before execution,
// the script itself is trusted text.
type Executor struct {
	db     *sql.DB
	logger log.Logger
}

func NewExecutor(db *sql.DB, logger log.Logger) *Executor {
	return &Executor{db: db, logger: logger}
}

func (e *Executor) Exec(ctx context.Context, script string, params map[string]any) error {
	statements := sqlutil.Split(script)

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Errorf("cannot begin transaction: %w", err)
	}

	for _, stm := range statements {
		stm, err := SubstituteParams(stm, params)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		e.logger.Debugf("Executing statement: %s", log.Sanitize(stm))
		if _, err := tx.ExecContext(ctx, stm); err != nil {
			_ = tx.Rollback()
			return errors.Errorf(`cannot execute statement "%s": %w`, log.Sanitize(stm), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Errorf("cannot commit transaction: %w", err)
	}
	return nil
}

// SubstituteParams replaces ":name" placeholders with sanitized literal values.
// A placeholder without a value is an error, string values are quoted and escaped.
func SubstituteParams(stm string, params map[string]any) (string, error) {
	result := errors.NewMultiError()
	out := regexpcache.MustCompile(placeholderRegexp).ReplaceAllStringFunc(stm, func(placeholder string) string {
		name := placeholder[1:]
		value, found := params[name]
		if !found {
			result.Append(errors.Errorf(`no value for the placeholder "%s"`, placeholder))
			return placeholder
		}
		literal, err := quoteValue(value)
		if err != nil {
			result.AppendWithPrefixf(err, `placeholder "%s"`, placeholder)
			return placeholder
		}
		return literal
	})
	if err := result.ErrorOrNil(); err != nil {
		return "", err
	}
	return out, nil
}

func quoteValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "NULL", nil
	case string:
		return storage.QuoteString(v), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return storage.QuoteString(v.Format("2006-01-02 15:04:05")), nil
	default:
		return "", errors.Errorf(`unsupported value type "%T"`, value)
	}
}
