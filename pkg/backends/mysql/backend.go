package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/ruslano69/dbal/pkg/backends"
)

// BackendType идентификатор MySQL адаптера
const BackendType = "mysql"

var _ backends.Backend = (*Backend)(nil)

func init() {
	// Регистрируем MySQL адаптер в фабрике
	backends.Register(BackendType, func() backends.Backend {
		return &Backend{}
	})
}

// Backend реализует backends.Backend для MySQL
type Backend struct{}

// Type возвращает тип адаптера
func (b *Backend) Type() string {
	return BackendType
}

// Open открывает подключение к MySQL базе данных
func (b *Backend) Open(ctx context.Context, cfg backends.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Placeholder возвращает плейсхолдер MySQL (позиционный "?")
func (b *Backend) Placeholder(prefix string, ordinal int) string {
	return "?"
}

// IdentityQuery возвращает запрос последнего вставленного identity
func (b *Backend) IdentityQuery() string {
	return "SELECT @@IDENTITY;"
}
