package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/logger"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

// SQLiteRecorder persists analysis results to a SQLite database.
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

	// WAL mode so dashboards can read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Log.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id                    TEXT PRIMARY KEY,
			timestamp             INTEGER NOT NULL,
			source                TEXT,
			document_type         TEXT,
			word_count            INTEGER,
			overall_score         REAL,
			risk_level            TEXT,
			primary_category      TEXT,
			trend                 TEXT,
			evolution_pattern     TEXT,
			hotspot_count         INTEGER,
			network_density       REAL,
			total_impact_millions REAL,
			impact_level          TEXT,
			urgency               REAL,
			primary_timeframe     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source)`,

		`CREATE TABLE IF NOT EXISTS detections (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			analysis_id    TEXT NOT NULL,
			category       TEXT NOT NULL,
			score          REAL,
			final_score    REAL,
			instance_count INTEGER,
			keywords       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_detections_analysis ON detections(analysis_id)`,

		`CREATE TABLE IF NOT EXISTS network_edges (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			analysis_id TEXT NOT NULL,
			source      TEXT NOT NULL,
			target      TEXT NOT NULL,
			edge_type   TEXT,
			weight      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_edges_analysis ON network_edges(analysis_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", stmtLabel(s), err)
		}
	}
	return nil
}

// stmtLabel shortens a migration statement for error messages.
func stmtLabel(s string) string {
	if len(s) > 40 {
		return s[:40]
	}
	return s
}

// RecordAnalysis inserts one analysis with its detections and edges, and
// returns the assigned record id.
func (r *SQLiteRecorder) RecordAnalysis(source string, result *model.AnalysisResult) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO analyses
		(id, timestamp, source, document_type, word_count,
		 overall_score, risk_level, primary_category,
		 trend, evolution_pattern, hotspot_count, network_density,
		 total_impact_millions, impact_level, urgency, primary_timeframe)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id, time.Now().Unix(), source, result.Document.DocType, result.Document.WordCount,
		result.Scores.OverallScore, result.Scores.Summary.RiskLevel, string(result.Scores.Summary.PrimaryCategory),
		result.Trend.Trend, result.Trend.EvolutionPattern, len(result.Trend.Hotspots), result.Network.Density,
		result.Scores.Financial.TotalMillions, result.Scores.Financial.ImpactLevel,
		result.Scores.Temporal.OverallUrgency, string(result.Scores.Temporal.PrimaryTimeframe),
	)
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}

	for _, det := range result.Detections {
		final := result.Scores.CategoryScores[det.Category]
		_, err = tx.Exec(`INSERT INTO detections
			(analysis_id, category, score, final_score, instance_count, keywords)
			VALUES (?,?,?,?,?,?)`,
			id, string(det.Category), det.Score, final, det.SentenceCount,
			strings.Join(det.KeywordsFound, ","),
		)
		if err != nil {
			return "", fmt.Errorf("insert detection: %w", err)
		}
	}

	for _, edge := range result.Network.Edges {
		_, err = tx.Exec(`INSERT INTO network_edges
			(analysis_id, source, target, edge_type, weight)
			VALUES (?,?,?,?,?)`,
			id, edge.Source, edge.Target, string(edge.Type), edge.Weight,
		)
		if err != nil {
			return "", fmt.Errorf("insert edge: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (r *SQLiteRecorder) Close() error {
	logger.Log.Info("closing sqlite recorder")
	return r.db.Close()
}
