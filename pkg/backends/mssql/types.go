package mssql

import (
	"fmt"

	"github.com/ruslano69/dbal/pkg/param"
)

// Type mapping for MS SQL Server 2012+
//
// Taxonomy Type      SQL Server Tag     Notes
// ──────────────────────────────────────────────────────────
// int32              INT
// int64              BIGINT
// string             NVARCHAR           Unicode (preferred)
// datetime           DATETIME
// float64            FLOAT
// decimal            DECIMAL
// guid               UNIQUEIDENTIFIER
// bool               INT                wire convention 1/2
// blob               VARBINARY          sized below maxPlainBinary,
//                                       VARBINARY(MAX) otherwise

// maxPlainBinary - граница размерного VARBINARY;
// начиная с этой длины размерная подсказка опускается
const maxPlainBinary = 8000

// BindParam подбирает SQL Server тег типа для параметра
func (b *Backend) BindParam(p *param.Param) error {
	switch p.Type {
	case param.TypeInt32:
		p.TypeTag = "INT"

	case param.TypeInt64:
		p.TypeTag = "BIGINT"

	case param.TypeString:
		p.TypeTag = "NVARCHAR"

	case param.TypeDateTime:
		p.TypeTag = "DATETIME"

	case param.TypeFloat64:
		p.TypeTag = "FLOAT"

	case param.TypeDecimal:
		p.TypeTag = "DECIMAL"

	case param.TypeGUID:
		p.TypeTag = "UNIQUEIDENTIFIER"

	case param.TypeBool:
		// Значение уже переведено в целочисленный домен 1/2
		p.TypeTag = "INT"

	case param.TypeBlob:
		blob, _ := p.Value.([]byte)
		if len(blob) < maxPlainBinary {
			p.TypeTag = "VARBINARY"
			p.Size = len(blob)
		} else {
			// Размерная подсказка не ставится
			p.TypeTag = "VARBINARY(MAX)"
		}

	default:
		return fmt.Errorf("%w: %s", param.ErrUnsupportedType, p.Type)
	}

	return nil
}
