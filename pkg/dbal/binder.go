package dbal

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ruslano69/dbal/pkg/backends"
	"github.com/ruslano69/dbal/pkg/param"
)

// bindArgs связывает аргументы вызова в параметры команды.
//
// Аргумент-срез (кроме []byte) разворачивается поэлементно: каждый элемент
// получает собственный параметр с последовательно растущим позиционным
// индексом. Это основа для IN (...) - вызывающий отдельно строит текстовый
// список плейсхолдеров через Placeholders и передает плоский срез значений
func bindArgs(backend backends.Backend, cfg backends.Config, args []any) ([]param.Param, error) {
	params := make([]param.Param, 0, len(args))
	index := cfg.ParamStart

	for _, arg := range args {
		elems, ok := expand(arg)
		if !ok {
			elems = []any{arg}
		}

		for _, el := range elems {
			p, err := bindOne(backend, cfg, index, len(params), el)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
			index++
		}
	}

	return params, nil
}

// bindOne связывает одно значение в параметр
func bindOne(backend backends.Backend, cfg backends.Config, index, ordinal int, value any) (param.Param, error) {
	declared, raw, err := declaredType(value)
	if err != nil {
		return param.Param{}, err
	}

	p := param.Param{
		Name:    cfg.ParamPrefix + strconv.Itoa(index),
		Index:   index,
		Ordinal: ordinal,
		Type:    declared,
		Value:   transform(declared, raw),
	}

	if err := backend.BindParam(&p); err != nil {
		return param.Param{}, fmt.Errorf("failed to bind parameter %s: %w", p.Name, err)
	}

	return p, nil
}

// declaredType выводит объявленный тип параметра.
// Явная пара param.TypedValue имеет приоритет над runtime типом значения -
// это единственный способ передать nil и единственный способ трактовать
// значение под другим тегом
func declaredType(value any) (param.Type, any, error) {
	if tv, ok := value.(param.TypedValue); ok {
		return tv.Type, tv.Value, nil
	}

	switch value.(type) {
	case nil:
		return 0, nil, fmt.Errorf("%w: nil value requires explicit TypedValue", param.ErrUnsupportedType)
	case int32:
		return param.TypeInt32, value, nil
	case int, int64:
		return param.TypeInt64, value, nil
	case string:
		return param.TypeString, value, nil
	case time.Time:
		return param.TypeDateTime, value, nil
	case float32, float64:
		return param.TypeFloat64, value, nil
	case bool:
		return param.TypeBool, value, nil
	case []byte:
		return param.TypeBlob, value, nil
	case uuid.UUID:
		return param.TypeGUID, value, nil
	default:
		return 0, nil, fmt.Errorf("%w: %T", param.ErrUnsupportedType, value)
	}
}

// transform применяет трансформации значения до общей NULL-подстановки:
//   - bool переводится в целочисленный домен: true → 1, false → 2.
//     Ноль зарезервирован проводной конвенцией как "не задано",
//     поэтому false кодируется двойкой, а не нулем
//   - datetime с нулевым значением переписывается в NULL,
//     нулевая дата литералом не отправляется
//   - guid сериализуется строкой для переносимости между драйверами
//
// Трансформация bool срабатывает по значению, а не по объявленному типу:
// bool под тегом int32 кодируется так же
func transform(declared param.Type, value any) any {
	if b, ok := value.(bool); ok {
		if b {
			return int64(1)
		}
		return int64(2)
	}

	switch declared {
	case param.TypeDateTime:
		if t, ok := value.(time.Time); ok && t.IsZero() {
			return nil
		}
	case param.TypeGUID:
		if u, ok := value.(uuid.UUID); ok {
			return u.String()
		}
	case param.TypeFloat64:
		if f, ok := value.(float32); ok {
			return float64(f)
		}
	}

	return value
}

// expand разворачивает аргумент-срез в элементы.
// []byte - единое значение (blob), TypedValue не разворачивается
func expand(value any) ([]any, bool) {
	switch value.(type) {
	case nil, []byte, string, param.TypedValue:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}

	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}
