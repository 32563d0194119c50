package dbal

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// TransactionScope владеет одной "flattened" транзакцией над сессией.
//
// Вложенные Begin/Commit разделяют единственную нативную транзакцию:
// Begin увеличивает счетчик, физический BeginTx происходит только на первом,
// физический Commit - когда счетчик возвращается к нулю. Rollback на любой
// глубине откатывает немедленно и сбрасывает счетчик в ноль, отменяя весь
// внешний scope: вложенные транзакции не являются независимыми.
type TransactionScope struct {
	mu      sync.Mutex
	session *Session
	tx      *sql.Tx
	refs    int
}

// NewTransactionScope создает scope транзакций над сессией
func NewTransactionScope(session *Session) *TransactionScope {
	return &TransactionScope{session: session}
}

// Begin стартует нативную транзакцию, если ее еще нет, и увеличивает счетчик.
// No-op, когда подключение сессии закрыто
func (t *TransactionScope) Begin(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	db := t.session.DB()
	if db == nil {
		return nil
	}

	if t.tx == nil {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		t.tx = tx
	}

	t.refs++
	return nil
}

// Commit уменьшает счетчик и фиксирует транзакцию, когда счетчик
// достигает нуля. No-op без открытого подключения или транзакции
func (t *TransactionScope) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session.DB() == nil || t.tx == nil {
		return nil
	}

	t.refs--
	if t.refs > 0 {
		return nil
	}

	err := t.tx.Commit()
	t.tx = nil
	t.refs = 0
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback немедленно откатывает транзакцию и принудительно сбрасывает
// счетчик в ноль независимо от глубины вложенности. Последующие Commit
// становятся no-op до нового Begin
func (t *TransactionScope) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session.DB() == nil || t.tx == nil {
		return nil
	}

	err := t.tx.Rollback()
	t.tx = nil
	t.refs = 0
	if err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Tx возвращает нативную транзакцию или nil, если транзакция не активна.
// Команды, построенные при активной транзакции, выполняются через нее
func (t *TransactionScope) Tx() *sql.Tx {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tx
}

// Active сообщает, есть ли активная транзакция
func (t *TransactionScope) Active() bool {
	return t.Tx() != nil
}

// Refs возвращает текущий счетчик вложенности
func (t *TransactionScope) Refs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refs
}
