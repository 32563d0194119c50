package mssql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/denisenkom/go-mssqldb" // MS SQL Server driver

	"github.com/ruslano69/dbal/pkg/backends"
)

// BackendType идентификатор MS SQL Server адаптера
const BackendType = "mssql"

var _ backends.Backend = (*Backend)(nil)

func init() {
	backends.Register(BackendType, func() backends.Backend {
		return &Backend{}
	})
}

// Backend реализует backends.Backend для MS SQL Server
type Backend struct{}

// Type возвращает тип адаптера
func (b *Backend) Type() string {
	return BackendType
}

// Open открывает подключение к MS SQL Server
func (b *Backend) Open(ctx context.Context, cfg backends.Config) (*sql.DB, error) {
	db, err := sql.Open("sqlserver", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Placeholder возвращает плейсхолдер SQL Server.
// Драйвер именует позиционные аргументы @p1..@pN; числовое имя вида @0
// не является валидным идентификатором T-SQL, поэтому префикс конфигурации
// здесь не участвует
func (b *Backend) Placeholder(prefix string, ordinal int) string {
	return fmt.Sprintf("@p%d", ordinal+1)
}

// IdentityQuery возвращает запрос последнего вставленного identity
func (b *Backend) IdentityQuery() string {
	return "SELECT @@IDENTITY;"
}
