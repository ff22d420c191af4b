package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/slooze/commodity-admin/internal/domain"
)

// SQLiteStore implementación durable de KeyValue sobre SQLite (driver puro Go).
// El esquema se crea automáticamente si no existe.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre (o crea) el almacén en path. Crea los directorios padre
// si hace falta y activa WAL para escrituras concurrentes con lecturas.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("activar WAL: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get devuelve el valor de key, o domain.ErrNotFound si no existe.
func (s *SQLiteStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("leer %q: %w", key, err)
	}
	return value, nil
}

// Set escribe o reemplaza el valor de key.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("escribir %q: %w", key, err)
	}
	return nil
}

// Remove elimina key; es idempotente.
func (s *SQLiteStore) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("eliminar %q: %w", key, err)
	}
	return nil
}

// Close cierra la base de datos subyacente.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
