package sqlite

import (
	"fmt"

	"github.com/ruslano69/dbal/pkg/param"
)

// BindParam подбирает SQLite тег типа для параметра.
// SQLite хранит значения в динамических storage-классах, поэтому
// таблица маппинга сводится к пяти тегам без размерных tier'ов
func (b *Backend) BindParam(p *param.Param) error {
	switch p.Type {
	case param.TypeInt32, param.TypeInt64, param.TypeBool:
		p.TypeTag = "INTEGER"

	case param.TypeString, param.TypeDateTime, param.TypeGUID:
		p.TypeTag = "TEXT"

	case param.TypeFloat64:
		p.TypeTag = "REAL"

	case param.TypeDecimal:
		p.TypeTag = "NUMERIC"

	case param.TypeBlob:
		p.TypeTag = "BLOB"
		if blob, ok := p.Value.([]byte); ok {
			p.Size = len(blob)
		}

	default:
		return fmt.Errorf("%w: %s", param.ErrUnsupportedType, p.Type)
	}

	return nil
}
