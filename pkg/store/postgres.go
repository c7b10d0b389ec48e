package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/raywall/items-handler/pkg/record"
)

// PostgresStore guarda os registros em `<table>(id text primary key, doc jsonb)`.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// OpenPostgres abre o pool e valida a conexão
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: open failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pgstore: ping failed: %w", err)
	}
	return db, nil
}

// NewPostgresStore não altera o nome da tabela: vazio gera erro do próprio banco.
func NewPostgresStore(db *sql.DB, tableName string) *PostgresStore {
	return &PostgresStore{db: db, table: pq.QuoteIdentifier(tableName)}
}

// EnsureSchema cria a tabela caso não exista
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (id text PRIMARY KEY, doc jsonb NOT NULL)`, s.table))
	if err != nil {
		return fmt.Errorf("pgstore: create table failed: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (record.Record, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.table), id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pgstore: get failed: %w", err)
	}

	var rec record.Record
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("pgstore: corrupted document %s: %w", id, err)
	}
	return rec, nil
}

func (s *PostgresStore) Put(ctx context.Context, rec record.Record) error {
	id, err := keyOf(rec)
	if err != nil {
		return err
	}
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("pgstore: marshal failed: %w", err)
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`, s.table), id, string(doc))
	if err != nil {
		return fmt.Errorf("pgstore: put failed: %w", err)
	}
	return nil
}

// Update faz merge raso dos campos (`doc || campos`), criando a linha se preciso.
func (s *PostgresStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return ErrMissingKey
	}

	patch := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch[record.FieldID] = id

	doc, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("pgstore: marshal failed: %w", err)
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %[1]s (id, doc) VALUES ($1, $2::jsonb)
		 ON CONFLICT (id) DO UPDATE SET doc = %[1]s.doc || EXCLUDED.doc`, s.table), id, string(doc))
	if err != nil {
		return fmt.Errorf("pgstore: update failed: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table), id)
	if err != nil {
		return fmt.Errorf("pgstore: delete failed: %w", err)
	}
	return nil
}
