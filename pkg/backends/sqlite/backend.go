package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ruslano69/dbal/pkg/backends"
	_ "modernc.org/sqlite"
)

const driverSqlite = "sqlite"

// Compile-time check: Backend должен реализовывать интерфейс backends.Backend
var _ backends.Backend = (*Backend)(nil)

// Регистрация адаптера в глобальной фабрике
func init() {
	backends.Register("sqlite", func() backends.Backend {
		return &Backend{}
	})
}

// Backend представляет адаптер для работы с SQLite
type Backend struct{}

// Type возвращает тип СУБД
func (b *Backend) Type() string {
	return "sqlite"
}

// Open открывает подключение к SQLite и проверяет его
func (b *Backend) Open(ctx context.Context, cfg backends.Config) (*sql.DB, error) {
	db, err := sql.Open(driverSqlite, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем подключение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Placeholder возвращает плейсхолдер SQLite (позиционный "?")
func (b *Backend) Placeholder(prefix string, ordinal int) string {
	return "?"
}

// IdentityQuery возвращает запрос последнего вставленного rowid
func (b *Backend) IdentityQuery() string {
	return "SELECT last_insert_rowid();"
}
