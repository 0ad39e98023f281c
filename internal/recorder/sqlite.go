package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"CraneAppraiser/internal/model"
)

// SQLiteRecorder persists appraisal history to a SQLite database.
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

	// WAL mode so reporting queries can read while appraisals write.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS appraisals (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id          TEXT NOT NULL,
			timestamp           INTEGER NOT NULL,
			manufacturer        TEXT,
			model               TEXT,
			model_year          INTEGER,
			capacity_tons       REAL,
			category            TEXT,
			operating_hours     INTEGER,
			location            TEXT,
			asking_price        REAL,
			replacement_cost    REAL,
			base_value          REAL,
			hours_adjustment    REAL,
			trend_adjustment    REAL,
			broker_adjustment   REAL,
			performance_adjustment REAL,
			regional_adjustment REAL,
			intel_adjustment    REAL,
			estimated_value     REAL,
			confidence_score    INTEGER,
			deal_score          INTEGER,
			wear_score          REAL,
			comparable_count    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_appraisals_ts ON appraisals(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_appraisals_req ON appraisals(request_id)`,

		`CREATE TABLE IF NOT EXISTS refresh_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			tables_loaded INTEGER,
			listing_count INTEGER,
			profile_count INTEGER,
			segment_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_ts ON refresh_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAppraisal(rec *AppraisalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spec := rec.Spec
	res := rec.Result
	b := res.Breakdown

	_, err := r.db.Exec(`INSERT INTO appraisals
		(request_id, timestamp, manufacturer, model, model_year, capacity_tons,
		 category, operating_hours, location, asking_price,
		 replacement_cost, base_value, hours_adjustment,
		 trend_adjustment, broker_adjustment, performance_adjustment,
		 regional_adjustment, intel_adjustment,
		 estimated_value, confidence_score, deal_score, wear_score, comparable_count)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.RequestID, time.Now().Unix(),
		spec.Manufacturer, spec.Model, spec.ModelYear, spec.CapacityTons,
		string(spec.Category), spec.OperatingHours, spec.Location, spec.AskingPrice,
		b[model.BreakdownReplacementCost], b[model.BreakdownBaseValue], b[model.BreakdownHours],
		b[model.BreakdownTrend], b[model.BreakdownBroker], b[model.BreakdownPerformance],
		b[model.BreakdownRegional], b[model.BreakdownMarketIntel],
		res.EstimatedValue, res.ConfidenceScore, res.DealScore, res.WearScore, len(res.Comparables),
	)
	return err
}

func (r *SQLiteRecorder) RecordRefresh(evt *RefreshEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO refresh_events
		(timestamp, tables_loaded, listing_count, profile_count, segment_count)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.TablesLoaded, evt.ListingCount, evt.ProfileCount, evt.SegmentCount,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
