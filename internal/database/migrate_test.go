package database

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	content := `-- ledger
CREATE TABLE a (ID NUMBER);

CREATE INDEX idx_a ON a (ID);
`
	stmts := SplitStatements(content)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (ID NUMBER)", stmts[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a (ID)", stmts[1])
}

func TestSplitStatements_ShippedMigrations(t *testing.T) {
	raw, err := os.ReadFile("../../database/migrations/0001_create_assessment_submissions.up.sql")
	require.NoError(t, err)
	assert.Len(t, SplitStatements(string(raw)), 2)
}

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestRunMigrations_AppliesPendingOnly(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "0001_a.up.sql", "CREATE TABLE a (ID NUMBER);")
	writeMigration(t, dir, "0001_a.down.sql", "DROP TABLE a;")
	writeMigration(t, dir, "0002_b.up.sql", "CREATE TABLE b (ID NUMBER);")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE schema_migrations")).
		WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT VERSION FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"VERSION"}).AddRow("0001_a"))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (ID NUMBER)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
		WithArgs("0002_b").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, RunMigrations(db, dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_FailingStatement(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "0001_a.up.sql", "CREATE TABLE a (ID NUMBER);")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT VERSION FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"VERSION"}))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (ID NUMBER)")).
		WillReturnError(errors.New("ORA-01031: insufficient privileges"))

	err = RunMigrations(db, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0001_a.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_MissingDir(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, RunMigrations(db, filepath.Join(t.TempDir(), "nope")))
}
