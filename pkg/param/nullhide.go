package param

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Формат времени, в котором SQLite и MySQL возвращают DATETIME без parseTime
const timeLayout = "2006-01-02 15:04:05"

// HideNull проецирует значение из БД в целевой тип T.
// NULL прячется за нулевым значением: 0 для числовых, "" для строк,
// нулевой time.Time для datetime, uuid.Nil для guid. Blob ([]byte)
// остается nil без подстановки. Для остальных типов NULL - фатальная
// ошибка ErrCannotHideNull.
func HideNull[T any](v any) (T, error) {
	var zero T
	if v == nil {
		switch any(zero).(type) {
		case int, int32, int64, float32, float64, string, bool, time.Time, uuid.UUID, []byte:
			return zero, nil
		default:
			return zero, fmt.Errorf("%w: %T", ErrCannotHideNull, zero)
		}
	}
	return coerce[T](v)
}

// coerce приводит значение драйвера к целевому типу.
// Драйверы возвращают узкий набор типов (int64, float64, bool, string,
// []byte, time.Time); здесь закрывается разрыв между ним и таксономией
func coerce[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}

	var zero T
	switch out := any(&zero).(type) {
	case *int64:
		n, ok := toInt64(v)
		if !ok {
			return zero, coerceError(v, zero)
		}
		*out = n
	case *int32:
		n, ok := toInt64(v)
		if !ok {
			return zero, coerceError(v, zero)
		}
		*out = int32(n)
	case *int:
		n, ok := toInt64(v)
		if !ok {
			return zero, coerceError(v, zero)
		}
		*out = int(n)
	case *float64:
		switch f := v.(type) {
		case float32:
			*out = float64(f)
		case int64:
			*out = float64(f)
		case []byte:
			parsed, err := strconv.ParseFloat(string(f), 64)
			if err != nil {
				return zero, coerceError(v, zero)
			}
			*out = parsed
		case string:
			parsed, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return zero, coerceError(v, zero)
			}
			*out = parsed
		default:
			return zero, coerceError(v, zero)
		}
	case *string:
		switch s := v.(type) {
		case []byte:
			*out = string(s)
		case int64:
			*out = strconv.FormatInt(s, 10)
		case float64:
			*out = strconv.FormatFloat(s, 'g', -1, 64)
		case time.Time:
			*out = s.Format(timeLayout)
		default:
			return zero, coerceError(v, zero)
		}
	case *bool:
		// Конвенция записи: 1 = true, 2 = false; все не-единицы читаются как false
		n, ok := toInt64(v)
		if !ok {
			return zero, coerceError(v, zero)
		}
		*out = n == 1
	case *time.Time:
		switch s := v.(type) {
		case string:
			parsed, err := parseTime(s)
			if err != nil {
				return zero, coerceError(v, zero)
			}
			*out = parsed
		case []byte:
			parsed, err := parseTime(string(s))
			if err != nil {
				return zero, coerceError(v, zero)
			}
			*out = parsed
		default:
			return zero, coerceError(v, zero)
		}
	case *uuid.UUID:
		switch s := v.(type) {
		case string:
			parsed, err := uuid.Parse(s)
			if err != nil {
				return zero, coerceError(v, zero)
			}
			*out = parsed
		case []byte:
			parsed, err := uuid.ParseBytes(s)
			if err != nil {
				return zero, coerceError(v, zero)
			}
			*out = parsed
		default:
			return zero, coerceError(v, zero)
		}
	case *[]byte:
		if s, ok := v.(string); ok {
			*out = []byte(s)
		} else {
			return zero, coerceError(v, zero)
		}
	default:
		return zero, coerceError(v, zero)
	}

	return zero, nil
}

func coerceError(v, target any) error {
	return fmt.Errorf("cannot convert %T to %T", v, target)
}

// toInt64 приводит целочисленное значение драйвера к int64
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case []byte:
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ToInt64 экспортирует приведение целочисленного скаляра для identity запросов
func ToInt64(v any) (int64, bool) {
	return toInt64(v)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
