package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"interview-admin-backend/internal/storage"
)

// docStore keeps every collection in a single documents table with a
// JSONB payload, so the schema never changes when record shapes do.
type docStore struct {
	db *sql.DB
}

func New(ctx context.Context, db *sql.DB, autoMigrate bool) (storage.Store, error) {
	s := &docStore{db: db}
	if autoMigrate {
		if err := s.migrate(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *docStore) migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			doc        JSONB NOT NULL,
			PRIMARY KEY (collection, id)
		)`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

func (s *docStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	query := `
		INSERT INTO documents (collection, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc
	`

	if _, err := s.db.ExecContext(ctx, query, collection, id, data); err != nil {
		return fmt.Errorf("failed to put document: %w", err)
	}
	return nil
}

func (s *docStore) Get(ctx context.Context, collection, id string) (*storage.Doc, error) {
	query := `SELECT doc FROM documents WHERE collection = $1 AND id = $2`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &storage.Doc{ID: id, Data: data}, nil
}

func (s *docStore) List(ctx context.Context, collection string, opts storage.ListOptions) ([]storage.Doc, error) {
	query := `SELECT id, doc FROM documents WHERE collection = $1 ORDER BY id`
	args := []interface{}{collection}

	if opts.OrderBy != "" {
		dir := "ASC"
		if opts.Desc {
			dir = "DESC"
		}
		// jsonb ordering: numbers compare numerically, strings by
		// collation, which keeps RFC 3339 timestamps chronological.
		query = fmt.Sprintf(
			`SELECT id, doc FROM documents WHERE collection = $1 ORDER BY doc -> $2 %s, id ASC`, dir)
		args = append(args, opts.OrderBy)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []storage.Doc
	for rows.Next() {
		var doc storage.Doc
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *docStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	query := `UPDATE documents SET doc = doc || $3::jsonb WHERE collection = $1 AND id = $2`

	result, err := s.db.ExecContext(ctx, query, collection, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *docStore) Count(ctx context.Context, collection string, where storage.Where) (int64, error) {
	query := `SELECT COUNT(*) FROM documents WHERE collection = $1 AND doc ->> $2 = $3`

	var n int64
	err := s.db.QueryRowContext(ctx, query, collection, where.Field, where.Value).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}

func (s *docStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	result, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *docStore) DeleteWhere(ctx context.Context, collection string, where storage.Where) (int64, error) {
	query := `DELETE FROM documents WHERE collection = $1 AND doc ->> $2 = $3`

	result, err := s.db.ExecContext(ctx, query, collection, where.Field, where.Value)
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}

	return result.RowsAffected()
}

func (s *docStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
