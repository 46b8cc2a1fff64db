package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"career-counsel/internal/logger"

	_ "github.com/sijms/go-ora/v2"
	"go.uber.org/zap"
)

const createMigrationsTable = `CREATE TABLE schema_migrations (
    VERSION    VARCHAR2(255) NOT NULL,
    APPLIED_AT TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL,
    CONSTRAINT pk_schema_migrations PRIMARY KEY (VERSION)
)`

// ORA-00955: name is already used by an existing object
const oraNameInUse = "ORA-00955"

// RunMigrations applies every *.up.sql file in dir that is not yet recorded
// in schema_migrations, in file name order.
func RunMigrations(db *sql.DB, dir string) error {
	files, err := pendingFiles(dir)
	if err != nil {
		return err
	}

	if _, err := db.Exec(createMigrationsTable); err != nil && !strings.Contains(err.Error(), oraNameInUse) {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	l := logger.Get()
	for _, name := range files {
		version := strings.TrimSuffix(name, ".up.sql")
		if applied[version] {
			l.Debug("Skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		if _, err := db.Exec(`INSERT INTO schema_migrations (VERSION) VALUES (:1)`, version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}
		l.Info("Executed migration", zap.String("version", version))
	}

	l.Info("Migrations completed successfully", zap.Int("files", len(files)))
	return nil
}

func pendingFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func appliedVersions(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT VERSION FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("could not list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// SplitStatements breaks a migration file into single statements. The Oracle
// driver executes one statement per call and rejects a trailing semicolon.
func SplitStatements(content string) []string {
	var out []string
	for _, part := range strings.Split(content, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// NewMigrateOracleDB opens a plain database/sql handle for the migrate command.
func NewMigrateOracleDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}

	return db, nil
}
