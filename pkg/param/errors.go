package param

import "errors"

var (
	// ErrUnsupportedType - объявленный тип параметра не входит в таксономию
	// или runtime тип значения не выводится. Ошибка программирования на стороне
	// вызывающего, не восстанавливается
	ErrUnsupportedType = errors.New("unsupported parameter type")

	// ErrCannotHideNull - NULL из БД нельзя спрятать за нулевым значением
	// запрошенного типа
	ErrCannotHideNull = errors.New("cannot hide null for this type")
)
