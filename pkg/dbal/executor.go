package dbal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ruslano69/dbal/pkg/backends"
	"github.com/ruslano69/dbal/pkg/param"
)

// Executor - точка входа слоя доступа к данным.
//
// Каждая публичная операция захватывает сессию на входе и гарантированно
// освобождает ее на всех путях выхода (успех, пустой результат, ошибка).
// Вызывающий может обернуть несколько операций внешней парой
// Acquire/Release, чтобы не переоткрывать подключение на каждый вызов.
//
// Executor и его сессия рассчитаны на один логический поток работы;
// счетчики защищены мьютексом, но порядок операций между горутинами
// вызывающий упорядочивает сам.
type Executor struct {
	backend backends.Backend
	cfg     backends.Config
	session *Session
	scope   *TransactionScope
}

// New создает Executor, подбирая адаптер по типу из конфигурации
// через глобальную фабрику
func New(cfg backends.Config) (*Executor, error) {
	backend, err := backends.New(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(backend, cfg), nil
}

// NewWithBackend создает Executor с готовым адаптером
func NewWithBackend(backend backends.Backend, cfg backends.Config) *Executor {
	cfg.ApplyDefaults()
	session := NewSession(backend, cfg)
	return &Executor{
		backend: backend,
		cfg:     cfg,
		session: session,
		scope:   NewTransactionScope(session),
	}
}

// Backend возвращает адаптер СУБД
func (e *Executor) Backend() backends.Backend {
	return e.backend
}

// Session возвращает сессию для внешнего checkout
func (e *Executor) Session() *Session {
	return e.session
}

// Scope возвращает scope транзакций
func (e *Executor) Scope() *TransactionScope {
	return e.scope
}

// ========== Session checkout ==========

// Acquire захватывает сессию (внешний checkout для серии операций)
func (e *Executor) Acquire(ctx context.Context) error {
	return e.session.Acquire(ctx)
}

// Release освобождает сессию
func (e *Executor) Release() error {
	return e.session.Release()
}

// ========== Transactions ==========

// Begin стартует или углубляет flattened транзакцию
func (e *Executor) Begin(ctx context.Context) error {
	return e.scope.Begin(ctx)
}

// Commit фиксирует транзакцию, когда вложенность возвращается к нулю
func (e *Executor) Commit() error {
	return e.scope.Commit()
}

// Rollback откатывает транзакцию и отменяет весь scope
func (e *Executor) Rollback() error {
	return e.scope.Rollback()
}

// ========== Placeholders ==========

// Placeholder возвращает текст плейсхолдера для i-го параметра
func (e *Executor) Placeholder(i int) string {
	return e.backend.Placeholder(e.cfg.ParamPrefix, i)
}

// Placeholders возвращает список плейсхолдеров "?, ?, ?" (или "@p1, @p2, ...")
// начиная с позиции from - для построения IN (...) под развернутый срез
func (e *Executor) Placeholders(from, n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, e.backend.Placeholder(e.cfg.ParamPrefix, from+i))
	}
	return strings.Join(parts, ", ")
}

// ========== Commands ==========

// BuildCommand связывает аргументы и строит одноразовую команду
func (e *Executor) BuildCommand(query string, args ...any) (*Command, error) {
	params, err := bindArgs(e.backend, e.cfg, args)
	if err != nil {
		return nil, err
	}

	return &Command{
		Text:    query,
		Params:  params,
		Timeout: e.cfg.Timeout,
	}, nil
}

// execCommand выполняет команду без результата через активную транзакцию
// или напрямую через подключение сессии
func (e *Executor) execCommand(ctx context.Context, cmd *Command) (sql.Result, error) {
	ctx, cancel := cmd.applyTimeout(ctx)
	defer cancel()

	if tx := e.scope.Tx(); tx != nil {
		return tx.ExecContext(ctx, cmd.Text, cmd.Values()...)
	}
	return e.session.DB().ExecContext(ctx, cmd.Text, cmd.Values()...)
}

// queryCommand выполняет команду с результатом.
// cancel отменяет deadline команды и вызывается после вычитывания rows
func (e *Executor) queryCommand(ctx context.Context, cmd *Command) (*sql.Rows, context.CancelFunc, error) {
	ctx, cancel := cmd.applyTimeout(ctx)

	var rows *sql.Rows
	var err error
	if tx := e.scope.Tx(); tx != nil {
		rows, err = tx.QueryContext(ctx, cmd.Text, cmd.Values()...)
	} else {
		rows, err = e.session.DB().QueryContext(ctx, cmd.Text, cmd.Values()...)
	}
	if err != nil {
		cancel()
		return nil, nil, err
	}

	return rows, cancel, nil
}

// ========== Operations ==========

// Exec выполняет запрос без результата и возвращает число затронутых строк
func (e *Executor) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if err := e.session.Acquire(ctx); err != nil {
		return 0, err
	}
	defer e.session.Release()

	cmd, err := e.BuildCommand(query, args...)
	if err != nil {
		return 0, err
	}

	res, err := e.execCommand(ctx, cmd)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	affected, _ := res.RowsAffected()
	return affected, nil
}

// ExecIdentity выполняет INSERT и возвращает последний вставленный identity,
// запрошенный у движка в той же сессии и транзакции.
//
// Скаляр, который не приводится к int64, молча превращается в 0 - это
// осознанно сохраненная lossy политика: 0 неотличим от "вставки не было"
func (e *Executor) ExecIdentity(ctx context.Context, query string, args ...any) (int64, error) {
	if err := e.session.Acquire(ctx); err != nil {
		return 0, err
	}
	defer e.session.Release()

	cmd, err := e.BuildCommand(query, args...)
	if err != nil {
		return 0, err
	}

	if _, err := e.execCommand(ctx, cmd); err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	identity, err := e.BuildCommand(e.backend.IdentityQuery())
	if err != nil {
		return 0, err
	}

	rows, cancel, err := e.queryCommand(ctx, identity)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch identity: %w", err)
	}
	defer cancel()
	defer rows.Close()

	if !rows.Next() {
		return 0, rows.Err()
	}

	var raw any
	if err := rows.Scan(&raw); err != nil {
		return 0, fmt.Errorf("failed to scan identity: %w", err)
	}

	id, ok := param.ToInt64(raw)
	if !ok {
		return 0, nil
	}
	return id, nil
}

// Query выполняет запрос и возвращает сырые *sql.Rows.
//
// Вызывающий обязан удерживать сессию внешней парой Acquire/Release на все
// время чтения rows: внутренний Release этой операции срабатывает до
// возврата, и без внешнего checkout подключение закроется под открытыми rows
func (e *Executor) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if err := e.session.Acquire(ctx); err != nil {
		return nil, err
	}
	defer e.session.Release()

	cmd, err := e.BuildCommand(query, args...)
	if err != nil {
		return nil, err
	}

	// Deadline команды не навешивается: rows переживают этот вызов,
	// и отмена контекста оборвала бы их чтение
	var rows *sql.Rows
	if tx := e.scope.Tx(); tx != nil {
		rows, err = tx.QueryContext(ctx, cmd.Text, cmd.Values()...)
	} else {
		rows, err = e.session.DB().QueryContext(ctx, cmd.Text, cmd.Values()...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return rows, nil
}
