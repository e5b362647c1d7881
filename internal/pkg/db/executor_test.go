package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/db-merge/internal/pkg/log"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// The in-memory database exists per connection
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestSubstituteParams(t *testing.T) {
	t.Parallel()
	params := map[string]any{
		"since":   "2024-01-01",
		"company": 123,
		"ratio":   0.5,
		"active":  true,
		"note":    nil,
	}
	out, err := SubstituteParams(
		"SELECT 1 WHERE a >= :since AND b = :company AND c > :ratio AND d = :active AND e IS :note",
		params,
	)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 WHERE a >= '2024-01-01' AND b = 123 AND c > 0.5 AND d = 1 AND e IS NULL", out)
}

func TestSubstituteParamsEscaping(t *testing.T) {
	t.Parallel()
	out, err := SubstituteParams("SELECT :v", map[string]any{"v": `O'Brien; DROP TABLE foo`})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'O''Brien; DROP TABLE foo'", out)
}

func TestSubstituteParamsTime(t *testing.T) {
	t.Parallel()
	v := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	out, err := SubstituteParams("SELECT :v", map[string]any{"v": v})
	require.NoError(t, err)
	assert.Equal(t, "SELECT '2024-01-02 03:04:05'", out)
}

func TestSubstituteParamsMissing(t *testing.T) {
	t.Parallel()
	_, err := SubstituteParams("SELECT :missing1, :missing2", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no value for the placeholder ":missing1"`)
	assert.Contains(t, err.Error(), `no value for the placeholder ":missing2"`)
}

func TestSubstituteParamsUnsupportedType(t *testing.T) {
	t.Parallel()
	_, err := SubstituteParams("SELECT :v", map[string]any{"v": []string{"a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value type")
}

func TestExecutorScript(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	executor := NewExecutor(db, log.NewDebugLogger())

	script := `
CREATE TABLE stats (company_id INTEGER, clicks INTEGER);
INSERT INTO stats VALUES (:company, 10);
INSERT INTO stats VALUES (:company, 5);
`
	err := executor.Exec(context.Background(), script, map[string]any{"company": 1})
	require.NoError(t, err)

	var sum int
	require.NoError(t, db.QueryRow("SELECT SUM(clicks) FROM stats WHERE company_id = 1").Scan(&sum))
	assert.Equal(t, 15, sum)
}

func TestExecutorRollbackOnError(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	_, err := db.Exec("CREATE TABLE stats (company_id INTEGER)")
	require.NoError(t, err)

	executor := NewExecutor(db, log.NewDebugLogger())
	script := `
INSERT INTO stats VALUES (1);
INSERT INTO missing_table VALUES (2);
`
	err = executor.Exec(context.Background(), script, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot execute statement")

	// The first insert must be rolled back with the failed one
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM stats").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestExecutorLogsStatements(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	logger := log.NewDebugLogger()
	executor := NewExecutor(db, logger)

	err := executor.Exec(context.Background(), "CREATE TABLE foo (id INTEGER);", nil)
	require.NoError(t, err)
	assert.Contains(t, logger.DebugMessages(), "Executing statement: CREATE TABLE foo (id INTEGER)")
}
