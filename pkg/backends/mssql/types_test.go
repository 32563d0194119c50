package mssql

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ruslano69/dbal/pkg/param"
)

// TestBindParam_VarbinaryCap проверяет границу размерного VARBINARY:
// ниже 8000 байт - размерная подсказка, начиная с 8000 - VARBINARY(MAX) без нее
func TestBindParam_VarbinaryCap(t *testing.T) {
	backend := &Backend{}

	p := param.Param{Type: param.TypeBlob, Value: bytes.Repeat([]byte{0x01}, 7999)}
	if err := backend.BindParam(&p); err != nil {
		t.Fatalf("BindParam failed: %v", err)
	}
	if p.TypeTag != "VARBINARY" || p.Size != 7999 {
		t.Errorf("expected VARBINARY with size 7999, got %s size %d", p.TypeTag, p.Size)
	}

	p = param.Param{Type: param.TypeBlob, Value: bytes.Repeat([]byte{0x01}, 8000)}
	if err := backend.BindParam(&p); err != nil {
		t.Fatalf("BindParam failed: %v", err)
	}
	if p.TypeTag != "VARBINARY(MAX)" {
		t.Errorf("expected VARBINARY(MAX), got %s", p.TypeTag)
	}
	if p.Size != 0 {
		t.Errorf("size hint must be omitted above the cap, got %d", p.Size)
	}
}

// TestBindParam_TypeTags проверяет таблицу маппинга таксономии на теги SQL Server
func TestBindParam_TypeTags(t *testing.T) {
	backend := &Backend{}

	want := map[param.Type]string{
		param.TypeInt32:    "INT",
		param.TypeInt64:    "BIGINT",
		param.TypeString:   "NVARCHAR",
		param.TypeDateTime: "DATETIME",
		param.TypeFloat64:  "FLOAT",
		param.TypeDecimal:  "DECIMAL",
		param.TypeGUID:     "UNIQUEIDENTIFIER",
		param.TypeBool:     "INT",
	}

	for typ, tag := range want {
		p := param.Param{Type: typ}
		if err := backend.BindParam(&p); err != nil {
			t.Fatalf("%s: BindParam failed: %v", typ, err)
		}
		if p.TypeTag != tag {
			t.Errorf("%s: expected tag %s, got %s", typ, tag, p.TypeTag)
		}
	}
}

// TestBindParam_Unsupported проверяет фатальную ошибку на неизвестном типе
func TestBindParam_Unsupported(t *testing.T) {
	backend := &Backend{}

	p := param.Param{Type: param.Type(42)}
	if err := backend.BindParam(&p); !errors.Is(err, param.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

// TestPlaceholder проверяет именование позиционных аргументов драйвера
func TestPlaceholder(t *testing.T) {
	backend := &Backend{}

	if got := backend.Placeholder("@", 0); got != "@p1" {
		t.Errorf("expected @p1, got %s", got)
	}
	if got := backend.Placeholder("@", 4); got != "@p5" {
		t.Errorf("expected @p5, got %s", got)
	}
}
