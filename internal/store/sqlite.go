package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sjf-simulator/internal/core"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("simulation not found")

// fixed width so created_at sorts as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is a stored simulation with its input.
type Record struct {
	ID        string
	CreatedAt time.Time
	Processes []core.Process
	Result    core.SimulationResult
}

// Summary is the list view of a stored simulation.
type Summary struct {
	ID                string    `json:"id"`
	CreatedAt         time.Time `json:"createdAt"`
	ProcessCount      int       `json:"processCount"`
	AvgWaitingTime    float64   `json:"avgWaitingTime"`
	AvgTurnaroundTime float64   `json:"avgTurnaroundTime"`
	CpuUtilization    float64   `json:"cpuUtilization"`
}

// SQLiteStore keeps the history of served simulations.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Entry
	now    func() time.Time
}

// NewSQLiteStore opens (or creates) the database at dbPath.
// Use ":memory:" for an in-memory database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// a :memory: database lives and dies with one connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: log.WithField("component", "store"),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("migrate")
	return migrate(ctx, s.db)
}

func newSimulationID() string {
	return "sim_" + uuid.New().String()[:8]
}

// Save stores a finished simulation and returns its id.
func (s *SQLiteStore) Save(ctx context.Context, processes []core.Process, result core.SimulationResult) (string, error) {
	id := newSimulationID()
	s.logger.WithField("simulation_id", id).Debug("insert simulation")

	processesJSON, err := json.Marshal(processes)
	if err != nil {
		return "", fmt.Errorf("marshal processes: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO simulations (id, process_count, avg_waiting_time, avg_turnaround_time, cpu_utilization, processes, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, len(processes), result.AvgWaitingTime, result.AvgTurnaroundTime, result.CPUUtilization,
		string(processesJSON), string(resultJSON), s.now().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert simulation: %w", err)
	}
	return id, nil
}

// Get returns the simulation with id, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	s.logger.WithField("simulation_id", id).Debug("select simulation")

	var record Record
	var processesJSON, resultJSON, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, processes, result, created_at FROM simulations WHERE id = ?`, id,
	).Scan(&record.ID, &processesJSON, &resultJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select simulation: %w", err)
	}

	if err := json.Unmarshal([]byte(processesJSON), &record.Processes); err != nil {
		return nil, fmt.Errorf("unmarshal processes: %w", err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &record.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	if record.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &record, nil
}

// List returns up to limit summaries, newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, process_count, avg_waiting_time, avg_turnaround_time, cpu_utilization
		 FROM simulations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var summary Summary
		var createdAt string
		if err := rows.Scan(&summary.ID, &createdAt, &summary.ProcessCount,
			&summary.AvgWaitingTime, &summary.AvgTurnaroundTime, &summary.CpuUtilization); err != nil {
			return nil, err
		}
		if summary.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
