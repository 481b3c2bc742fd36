package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"CVDScenarios/internal/logger"
	"CVDScenarios/internal/model"
)

// SQLiteRecorder writes generation runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id             TEXT PRIMARY KEY,
			generated_at   INTEGER NOT NULL,
			scenario_count INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS scenarios (
			run_id          TEXT NOT NULL REFERENCES runs(id),
			scenario_id     INTEGER NOT NULL,
			display_order   INTEGER NOT NULL,
			title           TEXT,
			price_direction TEXT,
			cvd_direction   TEXT,
			action          TEXT,
			sentiment       TEXT,
			color           TEXT,
			description     TEXT,
			rule            TEXT,
			entry           REAL,
			target          REAL,
			stop_loss       REAL,
			entry_time      INTEGER,
			risk_reward     TEXT,
			PRIMARY KEY (run_id, scenario_id)
		)`,

		`CREATE TABLE IF NOT EXISTS candles (
			run_id          TEXT NOT NULL,
			scenario_id     INTEGER NOT NULL,
			series          TEXT NOT NULL,
			time            INTEGER NOT NULL,
			open            REAL,
			high            REAL,
			low             REAL,
			close           REAL,
			volume          REAL,
			pattern         TEXT,
			structure_label TEXT,
			PRIMARY KEY (run_id, scenario_id, series, time)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_structure ON candles(structure_label)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun writes the run, its scenarios and all candles in one transaction.
func (r *SQLiteRecorder) RecordRun(ctx context.Context, run *Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (id, generated_at, scenario_count) VALUES (?,?,?)`,
		run.ID, run.GeneratedAt.Unix(), len(run.Scenarios)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	scenarioStmt, err := tx.PrepareContext(ctx, `INSERT INTO scenarios
		(run_id, scenario_id, display_order, title, price_direction, cvd_direction,
		 action, sentiment, color, description, rule,
		 entry, target, stop_loss, entry_time, risk_reward)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare scenarios: %w", err)
	}
	defer scenarioStmt.Close()

	candleStmt, err := tx.PrepareContext(ctx, `INSERT INTO candles
		(run_id, scenario_id, series, time, open, high, low, close, volume, pattern, structure_label)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare candles: %w", err)
	}
	defer candleStmt.Close()

	for i, s := range run.Scenarios {
		ts := s.TradeSetup
		if _, err := scenarioStmt.ExecContext(ctx,
			run.ID, s.ID, i, s.Title, string(s.PriceDirection), string(s.CVDDirection),
			string(s.Action), string(s.Sentiment), string(s.Color), s.Description, s.Rule,
			ts.Entry, ts.Target, ts.StopLoss, ts.EntryTime, ts.RiskReward,
		); err != nil {
			return fmt.Errorf("insert scenario %d: %w", s.ID, err)
		}
		if err := insertCandles(ctx, candleStmt, run.ID, s.ID, SeriesPrice, s.PriceData); err != nil {
			return err
		}
		if err := insertCandles(ctx, candleStmt, run.ID, s.ID, SeriesCVD, s.CVDData); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", run.ID, err)
	}
	logger.Debug("run recorded", zap.String("run_id", run.ID), zap.Int("scenarios", len(run.Scenarios)))
	return nil
}

func insertCandles(ctx context.Context, stmt *sql.Stmt, runID string, scenarioID int, series string, seq model.Sequence) error {
	for _, c := range seq {
		if _, err := stmt.ExecContext(ctx,
			runID, scenarioID, series, c.Time,
			c.Open, c.High, c.Low, c.Close, c.Volume,
			nullable(string(c.Pattern)), nullable(string(c.StructureLabel)),
		); err != nil {
			return fmt.Errorf("insert %s candle %d of scenario %d: %w", series, c.Time, scenarioID, err)
		}
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *SQLiteRecorder) Close() error {
	logger.Info("closing sqlite recorder")
	return r.db.Close()
}
