package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"taskflow-backend/internal/tasks"
)

// Postgres keeps the mapping in one table but honors the same
// whole-document contract as the file backend: Load reads every row,
// Save replaces the table contents in one transaction.
type Postgres struct {
	db *sql.DB
}

func ConnectPostgres(connString string) (*Postgres, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id   TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)
	`)
	if err != nil {
		return nil, err
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Load() (map[string]tasks.Fields, error) {
	rows, err := p.db.Query(`SELECT id, data FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer rows.Close()

	data := make(map[string]tasks.Fields)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		var f tasks.Fields
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("store: parse task %s: %w", id, err)
		}
		data[id] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return data, nil
}

func (p *Postgres) Save(data map[string]tasks.Fields) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	for id, f := range data {
		raw, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("store: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO tasks (id, data) VALUES ($1, $2)`, id, raw); err != nil {
			return fmt.Errorf("store: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
