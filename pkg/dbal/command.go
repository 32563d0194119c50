package dbal

import (
	"context"
	"time"

	"github.com/ruslano69/dbal/pkg/param"
)

// Command - одноразовая команда: текст запроса, упорядоченные параметры
// и таймаут. Создается на каждый вызов, не переиспользуется
type Command struct {
	// Text - текст SQL запроса с плейсхолдерами адаптера
	Text string

	// Params - связанные параметры в порядке аргументов драйвера
	Params []param.Param

	// Timeout - таймаут в секундах; <= 0 означает таймаут движка по умолчанию
	Timeout int
}

// Values возвращает значения параметров в порядке передачи драйверу
func (c *Command) Values() []any {
	values := make([]any, len(c.Params))
	for i, p := range c.Params {
		values[i] = p.Value
	}
	return values
}

// applyTimeout навешивает deadline команды на контекст.
// Возвращенный cancel обязателен к вызову после завершения работы с результатом
func (c *Command) applyTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, time.Duration(c.Timeout)*time.Second)
}
