package leadstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	errx "github.com/autoparts-agent/server/internal/core/error"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

const createLeadsTableSQL = `
CREATE TABLE IF NOT EXISTS leads (
	id TEXT PRIMARY KEY,
	created_at_utc TEXT NOT NULL,
	name TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	vehicle_make TEXT NOT NULL DEFAULT '',
	part_category TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	service_requested INTEGER NOT NULL DEFAULT 0
)`

var createLeadsIndexesSQL = []string{
	`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at_utc)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_service_requested ON leads(service_requested)`,
}

const insertLeadSQL = `
INSERT INTO leads (
	id,
	created_at_utc,
	name,
	phone,
	email,
	vehicle_make,
	part_category,
	message,
	service_requested
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLite is a Store backed by a local SQLite database. The schema is
// created on open so first use needs no migration step.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the lead database at dbPath.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("db path is required")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(createLeadsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create leads table: %w", err)
	}
	for _, stmt := range createLeadsIndexesSQL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create leads index: %w", err)
		}
	}
	return &SQLite{db: db}, nil
}

// Append inserts the lead, generating an ID and timestamp when absent.
func (s *SQLite) Append(ctx context.Context, lead Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Timestamp.IsZero() {
		lead.Timestamp = time.Now().UTC()
	}

	service := 0
	if lead.ServiceRequested {
		service = 1
	}
	_, err := s.db.ExecContext(ctx, insertLeadSQL,
		lead.ID,
		lead.Timestamp.UTC().Format(time.RFC3339),
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.VehicleMake,
		lead.PartCategory,
		lead.Message,
		service,
	)
	if err != nil {
		logx.Error().Err(err).Str("component", "leadstore").Str("lead_id", lead.ID).Msg("failed to insert lead")
		return errx.WrapStore(err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLite)(nil)
