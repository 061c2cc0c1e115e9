// Package store provides PostgreSQL persistence for document version history.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/ats-engine/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the version history tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			label TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS document_versions (
			document_id UUID NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			version INT NOT NULL,
			parent_version INT,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (document_id, version)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// CreateDocument registers a new document and returns its ID.
func (s *Store) CreateDocument(ctx context.Context, label string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO documents (label) VALUES ($1) RETURNING id`,
		label,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create document: %w", err)
	}
	return id, nil
}

// encodeDocument renders a document as the JSONB payload stored per version.
func encodeDocument(doc *types.Document) ([]byte, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return payload, nil
}

// decodeDocument restores a document from a stored payload.
func decodeDocument(payload []byte) (*types.Document, error) {
	var doc types.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// SaveVersion stores one document version as a JSONB payload. Saving the
// same version twice is an error; versions are immutable once written.
func (s *Store) SaveVersion(ctx context.Context, documentID uuid.UUID, doc *types.Document) error {
	payload, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO document_versions (document_id, version, parent_version, payload)
		 VALUES ($1, $2, $3, $4)`,
		documentID, doc.Version, doc.ParentVersion, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save version %d: %w", doc.Version, err)
	}
	return nil
}

// GetVersion retrieves one document version. Returns nil when the version
// does not exist.
func (s *Store) GetVersion(ctx context.Context, documentID uuid.UUID, version int) (*types.Document, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM document_versions WHERE document_id = $1 AND version = $2`,
		documentID, version,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get version %d: %w", version, err)
	}

	return decodeDocument(payload)
}

// LatestVersion retrieves the highest-numbered version of a document.
// Returns nil when the document has no versions.
func (s *Store) LatestVersion(ctx context.Context, documentID uuid.UUID) (*types.Document, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM document_versions
		 WHERE document_id = $1 ORDER BY version DESC LIMIT 1`,
		documentID,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest version: %w", err)
	}

	return decodeDocument(payload)
}

// VersionInfo is a lightweight view of one version for lineage listings.
type VersionInfo struct {
	Version       int    `json:"version"`
	ParentVersion *int   `json:"parent_version,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// Lineage lists a document's versions oldest first.
func (s *Store) Lineage(ctx context.Context, documentID uuid.UUID) ([]VersionInfo, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT version, parent_version, created_at::text
		 FROM document_versions WHERE document_id = $1 ORDER BY version ASC`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	var versions []VersionInfo
	for rows.Next() {
		var info VersionInfo
		if err := rows.Scan(&info.Version, &info.ParentVersion, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}
