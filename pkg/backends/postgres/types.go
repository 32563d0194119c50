package postgres

import (
	"fmt"

	"github.com/ruslano69/dbal/pkg/param"
)

// BindParam подбирает PostgreSQL тег типа для параметра.
// BYTEA не имеет размерных tier'ов: длина пишется в Size без выбора варианта
func (b *Backend) BindParam(p *param.Param) error {
	switch p.Type {
	case param.TypeInt32:
		p.TypeTag = "INTEGER"

	case param.TypeInt64:
		p.TypeTag = "BIGINT"

	case param.TypeString:
		p.TypeTag = "TEXT"

	case param.TypeDateTime:
		p.TypeTag = "TIMESTAMP"

	case param.TypeFloat64:
		p.TypeTag = "DOUBLE PRECISION"

	case param.TypeDecimal:
		p.TypeTag = "NUMERIC"

	case param.TypeGUID:
		p.TypeTag = "UUID"

	case param.TypeBool:
		// Значение уже переведено в целочисленный домен 1/2
		p.TypeTag = "SMALLINT"

	case param.TypeBlob:
		p.TypeTag = "BYTEA"
		if blob, ok := p.Value.([]byte); ok {
			p.Size = len(blob)
		}

	default:
		return fmt.Errorf("%w: %s", param.ErrUnsupportedType, p.Type)
	}

	return nil
}
