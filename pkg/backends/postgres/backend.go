package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"github.com/ruslano69/dbal/pkg/backends"
)

// BackendType идентификатор PostgreSQL адаптера
const BackendType = "postgres"

var _ backends.Backend = (*Backend)(nil)

func init() {
	backends.Register(BackendType, func() backends.Backend {
		return &Backend{}
	})
}

// Backend реализует backends.Backend для PostgreSQL через pgx stdlib драйвер
type Backend struct{}

// Type возвращает тип адаптера
func (b *Backend) Type() string {
	return BackendType
}

// Open открывает подключение к PostgreSQL
func (b *Backend) Open(ctx context.Context, cfg backends.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Placeholder возвращает плейсхолдер PostgreSQL ($1..$N)
func (b *Backend) Placeholder(prefix string, ordinal int) string {
	return fmt.Sprintf("$%d", ordinal+1)
}

// IdentityQuery возвращает запрос последнего значения sequence текущей сессии
func (b *Backend) IdentityQuery() string {
	return "SELECT lastval();"
}
