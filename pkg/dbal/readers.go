package dbal

import (
	"context"
	"database/sql"

	"github.com/ruslano69/dbal/pkg/param"
)

// Типизированные читатели результатов.
//
// Все читатели - функции уровня пакета: Go не допускает методов с
// параметрами типа. Каждый читатель захватывает сессию, полностью
// вычитывает результат и освобождает сессию на всех путях выхода.
// NULL из БД прячется за нулевым значением целевого типа (param.HideNull).
// Пустой результат - не ошибка: скалярные читатели возвращают нулевое
// значение, коллекции - пустые.
//
// Кортежи большей арности собираются вызывающим поверх Executor.Query
// по образцу PairList.

// Pair - пара (ключ, значение) строки результата
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Value возвращает первую колонку первой строки результата
func Value[T any](ctx context.Context, e *Executor, query string, args ...any) (T, error) {
	var zero T

	if err := e.session.Acquire(ctx); err != nil {
		return zero, err
	}
	defer e.session.Release()

	rows, cancel, err := e.run(ctx, query, args)
	if err != nil {
		return zero, err
	}
	defer cancel()
	defer rows.Close()

	if !rows.Next() {
		return zero, rows.Err()
	}

	var raw any
	if err := rows.Scan(&raw); err != nil {
		return zero, err
	}

	return param.HideNull[T](raw)
}

// ValueList возвращает первую колонку всех строк результата
func ValueList[T any](ctx context.Context, e *Executor, query string, args ...any) ([]T, error) {
	if err := e.session.Acquire(ctx); err != nil {
		return nil, err
	}
	defer e.session.Release()

	rows, cancel, err := e.run(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	var out []T
	for rows.Next() {
		var raw any
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		v, err := param.HideNull[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

// Dict возвращает словарь: колонка 0 - ключ, колонка 1 - значение.
// Повторный ключ перезаписывает предыдущее значение
func Dict[K comparable, V any](ctx context.Context, e *Executor, query string, args ...any) (map[K]V, error) {
	if err := e.session.Acquire(ctx); err != nil {
		return nil, err
	}
	defer e.session.Release()

	rows, cancel, err := e.run(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	out := make(map[K]V)
	for rows.Next() {
		k, v, err := scanPair[K, V](rows)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, rows.Err()
}

// DictList возвращает словарь списков: колонка 0 - ключ,
// колонка 1 добавляется в список значений ключа
func DictList[K comparable, V any](ctx context.Context, e *Executor, query string, args ...any) (map[K][]V, error) {
	if err := e.session.Acquire(ctx); err != nil {
		return nil, err
	}
	defer e.session.Release()

	rows, cancel, err := e.run(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	out := make(map[K][]V)
	for rows.Next() {
		k, v, err := scanPair[K, V](rows)
		if err != nil {
			return nil, err
		}
		out[k] = append(out[k], v)
	}

	return out, rows.Err()
}

// PairList возвращает все строки результата как пары колонок 0 и 1,
// сохраняя порядок и дубликаты ключей
func PairList[K comparable, V any](ctx context.Context, e *Executor, query string, args ...any) ([]Pair[K, V], error) {
	if err := e.session.Acquire(ctx); err != nil {
		return nil, err
	}
	defer e.session.Release()

	rows, cancel, err := e.run(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	var out []Pair[K, V]
	for rows.Next() {
		k, v, err := scanPair[K, V](rows)
		if err != nil {
			return nil, err
		}
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}

	return out, rows.Err()
}

// run строит команду и выполняет ее с результатом
func (e *Executor) run(ctx context.Context, query string, args []any) (*sql.Rows, context.CancelFunc, error) {
	cmd, err := e.BuildCommand(query, args...)
	if err != nil {
		return nil, nil, err
	}
	return e.queryCommand(ctx, cmd)
}

// rowsScanner - минимальная поверхность *sql.Rows, нужная читателям
type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// scanPair читает колонки 0 и 1 текущей строки с NULL-проекцией
func scanPair[K comparable, V any](rows rowsScanner) (K, V, error) {
	var zeroK K
	var zeroV V

	var rawK, rawV any
	if err := rows.Scan(&rawK, &rawV); err != nil {
		return zeroK, zeroV, err
	}

	k, err := param.HideNull[K](rawK)
	if err != nil {
		return zeroK, zeroV, err
	}
	v, err := param.HideNull[V](rawV)
	if err != nil {
		return zeroK, zeroV, err
	}

	return k, v, nil
}
