package dbal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ruslano69/dbal/pkg/backends"
	sqlitebackend "github.com/ruslano69/dbal/pkg/backends/sqlite"
	"github.com/ruslano69/dbal/pkg/dbal"
	"github.com/ruslano69/dbal/pkg/param"
)

// newBindExecutor создает Executor для проверки связывания
// (подключение не открывается: BuildCommand не трогает сессию)
func newBindExecutor(cfg backends.Config) *dbal.Executor {
	cfg.Type = "sqlite"
	cfg.DSN = ":memory:"
	return dbal.NewWithBackend(&sqlitebackend.Backend{}, cfg)
}

// TestBind_BoolEncoding проверяет проводную конвенцию: true → 1, false → 2.
// Ноль зарезервирован как "не задано" и для false не используется
func TestBind_BoolEncoding(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	cmd, err := exec.BuildCommand(`UPDATE t SET a = ?, b = ?`, true, false)
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if got := cmd.Params[0].Value; got != int64(1) {
		t.Errorf("true must bind as 1, got %v", got)
	}
	if got := cmd.Params[1].Value; got != int64(2) {
		t.Errorf("false must bind as 2 (not 0), got %v", got)
	}
}

// TestBind_ZeroDateTime проверяет, что нулевая дата переписывается в NULL
// и не отправляется литералом
func TestBind_ZeroDateTime(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	cmd, err := exec.BuildCommand(`UPDATE t SET a = ?, b = ?`, time.Time{}, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if cmd.Params[0].Value != nil {
		t.Errorf("zero datetime must bind as NULL, got %v", cmd.Params[0].Value)
	}
	if cmd.Params[1].Value == nil {
		t.Error("non-zero datetime must not bind as NULL")
	}
}

// TestBind_TypedValue проверяет явную пару (тип, значение):
// nil требует явного типа, bool допустимо трактовать под целочисленным тегом
func TestBind_TypedValue(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	cmd, err := exec.BuildCommand(`UPDATE t SET a = ?, b = ?`,
		param.TypedValue{Type: param.TypeString, Value: nil},
		param.TypedValue{Type: param.TypeInt32, Value: true},
	)
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if cmd.Params[0].Value != nil || cmd.Params[0].Type != param.TypeString {
		t.Errorf("expected NULL string parameter, got type=%s value=%v", cmd.Params[0].Type, cmd.Params[0].Value)
	}

	// Переинтерпретация: тег от int32, кодировка значения от bool
	if cmd.Params[1].Type != param.TypeInt32 {
		t.Errorf("declared type must win over runtime type, got %s", cmd.Params[1].Type)
	}
	if cmd.Params[1].Value != int64(1) {
		t.Errorf("bool under int32 tag must still encode as 1, got %v", cmd.Params[1].Value)
	}
}

// TestBind_BareNil проверяет, что nil без явного типа - фатальная ошибка связывания
func TestBind_BareNil(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	_, err := exec.BuildCommand(`UPDATE t SET a = ?`, nil)
	if !errors.Is(err, param.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

// TestBind_UnsupportedType проверяет отказ на неизвестном runtime типе
func TestBind_UnsupportedType(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	_, err := exec.BuildCommand(`UPDATE t SET a = ?`, struct{ X int }{1})
	if !errors.Is(err, param.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

// TestBind_CollectionExpansion проверяет развертку среза: каждый элемент
// получает собственный параметр с последовательным индексом
func TestBind_CollectionExpansion(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	cmd, err := exec.BuildCommand(`SELECT * FROM t WHERE a = ? AND b IN (?, ?, ?) AND c = ?`,
		"first", []int64{10, 20, 30}, "last")
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if len(cmd.Params) != 5 {
		t.Fatalf("expected 5 parameters after expansion, got %d", len(cmd.Params))
	}

	wantNames := []string{"@0", "@1", "@2", "@3", "@4"}
	wantValues := []any{"first", int64(10), int64(20), int64(30), "last"}
	for i, p := range cmd.Params {
		if p.Name != wantNames[i] {
			t.Errorf("param %d: expected name %s, got %s", i, wantNames[i], p.Name)
		}
		if p.Value != wantValues[i] {
			t.Errorf("param %d: expected value %v, got %v", i, wantValues[i], p.Value)
		}
		if p.Ordinal != i {
			t.Errorf("param %d: expected ordinal %d, got %d", i, i, p.Ordinal)
		}
	}
}

// TestBind_BlobNotExpanded проверяет, что []byte - единое blob значение
func TestBind_BlobNotExpanded(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	cmd, err := exec.BuildCommand(`UPDATE t SET a = ?`, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if len(cmd.Params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(cmd.Params))
	}
	if cmd.Params[0].Type != param.TypeBlob {
		t.Errorf("expected blob parameter, got %s", cmd.Params[0].Type)
	}
	if cmd.Params[0].Size != 3 {
		t.Errorf("expected size 3, got %d", cmd.Params[0].Size)
	}
}

// TestBind_GUID проверяет сериализацию guid строкой
func TestBind_GUID(t *testing.T) {
	exec := newBindExecutor(backends.Config{})

	id := uuid.MustParse("c56a4180-65aa-42ec-a945-5fd21dec0538")
	cmd, err := exec.BuildCommand(`UPDATE t SET a = ?`, id)
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if cmd.Params[0].Type != param.TypeGUID {
		t.Errorf("expected guid parameter, got %s", cmd.Params[0].Type)
	}
	if cmd.Params[0].Value != id.String() {
		t.Errorf("guid must bind as string %q, got %v", id.String(), cmd.Params[0].Value)
	}
}

// TestBind_ParamStart проверяет стартовое смещение позиционных индексов
func TestBind_ParamStart(t *testing.T) {
	exec := newBindExecutor(backends.Config{ParamPrefix: ":", ParamStart: 1})

	cmd, err := exec.BuildCommand(`UPDATE t SET a = ?, b = ?`, "x", "y")
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if cmd.Params[0].Name != ":1" || cmd.Params[1].Name != ":2" {
		t.Errorf("expected names :1 and :2, got %s and %s", cmd.Params[0].Name, cmd.Params[1].Name)
	}
	// Порядковый номер аргумента драйвера не зависит от смещения
	if cmd.Params[0].Ordinal != 0 || cmd.Params[1].Ordinal != 1 {
		t.Errorf("expected ordinals 0 and 1, got %d and %d", cmd.Params[0].Ordinal, cmd.Params[1].Ordinal)
	}
}
