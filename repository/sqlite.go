package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"lease-agent/domain"
)

// SQLiteRepository implements AnalysisRepository using modernc.org/sqlite.
// The full input and analysis are stored as JSON; the core money and
// percent fields are broken out into columns for trend queries.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path, configures WAL
// mode, and applies the schema.
func NewSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	repo := &SQLiteRepository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id              TEXT PRIMARY KEY,
	input           TEXT NOT NULL,
	analysis        TEXT NOT NULL,
	overall_grade   TEXT NOT NULL,
	apr             REAL NOT NULL,
	money_factor    REAL NOT NULL,
	monthly_payment REAL NOT NULL,
	total_cost      REAL NOT NULL,
	junk_fees       REAL NOT NULL,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_overall_grade ON analyses(overall_grade);
`

func (r *SQLiteRepository) migrate() error {
	_, err := r.db.Exec(sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

// Close closes the underlying database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Save stores the analysis and returns its id.
func (r *SQLiteRepository) Save(
	ctx context.Context,
	input domain.LeaseInput,
	analysis domain.LeaseAnalysis,
) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: marshal input")
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: marshal analysis")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO analyses
			(id, input, analysis, overall_grade, apr, money_factor, monthly_payment, total_cost, junk_fees, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, string(inputJSON), string(analysisJSON),
		analysis.OverallGrade.Letter, analysis.APR, analysis.MoneyFactor,
		analysis.CalculatedPayment, analysis.TotalLeaseCost, analysis.TotalJunkFees,
		now,
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: insert analysis")
	}

	return id, nil
}

// ListRecent returns up to limit records, newest first.
func (r *SQLiteRepository) ListRecent(
	ctx context.Context,
	limit int,
) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, input, analysis, created_at
		 FROM analyses
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query analyses")
	}
	defer rows.Close()

	records := []AnalysisRecord{}
	for rows.Next() {
		var rec AnalysisRecord
		var inputJSON, analysisJSON string
		if err := rows.Scan(&rec.ID, &inputJSON, &analysisJSON, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan analysis")
		}
		if err := json.Unmarshal([]byte(inputJSON), &rec.Input); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal input")
		}
		if err := json.Unmarshal([]byte(analysisJSON), &rec.Analysis); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal analysis")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: iterate analyses")
}
