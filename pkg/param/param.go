package param

// Type - закрытая таксономия типов параметров
// Адаптеры СУБД добавляются через новую таблицу маппинга, а не через расширение таксономии
type Type int

const (
	TypeInt32 Type = iota
	TypeInt64
	TypeString
	TypeDateTime
	TypeFloat64
	TypeDecimal
	TypeGUID
	TypeBool
	TypeBlob
)

// String возвращает имя типа для ошибок и диагностики
func (t Type) String() string {
	switch t {
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeString:
		return "string"
	case TypeDateTime:
		return "datetime"
	case TypeFloat64:
		return "float64"
	case TypeDecimal:
		return "decimal"
	case TypeGUID:
		return "guid"
	case TypeBool:
		return "bool"
	case TypeBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// TypedValue - явная пара (объявленный тип, значение)
// Обязательна когда значение nil (runtime тип не выводится)
// или когда значение надо трактовать под другим типом (bool под тегом int32)
type TypedValue struct {
	Type  Type
	Value any
}

// Param - связанный параметр команды
// Создается на каждый вызов, принадлежит команде, после выполнения не переиспользуется
type Param struct {
	// Name - имя параметра: префикс + позиционный индекс ("@0", "@1", ...)
	Name string

	// Index - позиционный индекс с учетом стартового смещения конфигурации
	Index int

	// Ordinal - порядковый номер аргумента драйвера (всегда с нуля)
	Ordinal int

	// Type - объявленный тип из таксономии
	Type Type

	// TypeTag - backend-специфичный тег типа ("BIGINT", "MEDIUMBLOB", ...)
	// Заполняется адаптером при связывании
	TypeTag string

	// Value - значение после трансформаций; nil означает SQL NULL
	// (параметр присутствует в команде, а не отсутствует)
	Value any

	// Size - длина blob в байтах, когда адаптер выбрал размерный tier
	Size int
}
