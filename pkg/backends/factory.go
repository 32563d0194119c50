package backends

import (
	"fmt"
	"sync"
)

// BackendConstructor - функция-конструктор адаптера
type BackendConstructor func() Backend

// Factory - фабрика адаптеров
// Управляет регистрацией и созданием адаптеров различных типов СУБД
type Factory struct {
	registry map[string]BackendConstructor
	mu       sync.RWMutex
}

// NewFactory создает новую фабрику адаптеров
func NewFactory() *Factory {
	return &Factory{
		registry: make(map[string]BackendConstructor),
	}
}

// Register регистрирует конструктор адаптера для типа СУБД
//
// Пример:
//
//	factory.Register("sqlite", func() backends.Backend {
//	    return &sqlite.Backend{}
//	})
func (f *Factory) Register(dbType string, constructor BackendConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registry[dbType] = constructor
}

// Unregister удаляет конструктор адаптера
func (f *Factory) Unregister(dbType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.registry, dbType)
}

// IsRegistered проверяет, зарегистрирован ли адаптер для данного типа СУБД
func (f *Factory) IsRegistered(dbType string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.registry[dbType]
	return ok
}

// RegisteredTypes возвращает список всех зарегистрированных типов СУБД
func (f *Factory) RegisteredTypes() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	types := make([]string, 0, len(f.registry))
	for dbType := range f.registry {
		types = append(types, dbType)
	}
	return types
}

// New создает адаптер по типу из конфигурации
// Подключение не открывается: им владеет сессия
func (f *Factory) New(cfg Config) (Backend, error) {
	f.mu.RLock()
	constructor, ok := f.registry[cfg.Type]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown database type: %q (registered: %v)",
			cfg.Type, f.RegisteredTypes())
	}

	return constructor(), nil
}

// Глобальная фабрика, в которую адаптеры регистрируются через init()
var defaultFactory = NewFactory()

// Register регистрирует конструктор в глобальной фабрике
func Register(dbType string, constructor BackendConstructor) {
	defaultFactory.Register(dbType, constructor)
}

// New создает адаптер через глобальную фабрику
func New(cfg Config) (Backend, error) {
	return defaultFactory.New(cfg)
}

// IsRegistered проверяет регистрацию в глобальной фабрике
func IsRegistered(dbType string) bool {
	return defaultFactory.IsRegistered(dbType)
}

// RegisteredTypes возвращает типы, зарегистрированные в глобальной фабрике
func RegisteredTypes() []string {
	return defaultFactory.RegisteredTypes()
}
