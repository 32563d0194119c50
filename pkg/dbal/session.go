package dbal

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/ruslano69/dbal/pkg/backends"
)

// Session владеет жизненным циклом одного логического подключения к БД.
//
// Подключение открывается лениво при первом Acquire и закрывается когда
// счетчик ссылок возвращается к нулю. Пары Acquire/Release реентерабельны:
// внешний checkout удерживает подключение открытым для вложенных операций,
// физический open/close происходит ровно один раз на внешнюю пару.
//
// Инвариант: handle != nil тогда и только тогда, когда счетчик > 0.
type Session struct {
	mu      sync.Mutex
	backend backends.Backend
	cfg     backends.Config
	db      *sql.DB
	refs    int
}

// NewSession создает сессию для адаптера и конфигурации
// Подключение не открывается до первого Acquire
func NewSession(backend backends.Backend, cfg backends.Config) *Session {
	cfg.ApplyDefaults()
	return &Session{
		backend: backend,
		cfg:     cfg,
	}
}

// Acquire открывает подключение, если его еще нет, и увеличивает счетчик.
// Счетчик увеличивается безусловно, даже когда подключение уже существовало.
// Ошибка открытия фатальна: счетчик не увеличивается, подключение не создается
func (s *Session) Acquire(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		db, err := s.backend.Open(ctx, s.cfg)
		if err != nil {
			return fmt.Errorf("failed to acquire session: %w", err)
		}
		// Одна сессия владеет ровно одним нативным handle.
		// Без этого identity запрос мог бы уйти на другое подключение пула
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		s.db = db
	}

	s.refs++
	return nil
}

// Release уменьшает счетчик и закрывает подключение, когда счетчик
// достигает ровно нуля. Иначе - no-op помимо декремента
func (s *Session) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs > 0 {
		s.refs--
	}

	if s.db != nil && s.refs == 0 {
		err := s.db.Close()
		s.db = nil
		if err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}
	}

	return nil
}

// DB возвращает текущее подключение или nil, если сессия закрыта
func (s *Session) DB() *sql.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// Open сообщает, открыто ли подключение сессии
func (s *Session) Open() bool {
	return s.DB() != nil
}

// Refs возвращает текущий счетчик ссылок
func (s *Session) Refs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs
}

// Config возвращает конфигурацию сессии (с примененными значениями по умолчанию)
func (s *Session) Config() backends.Config {
	return s.cfg
}
