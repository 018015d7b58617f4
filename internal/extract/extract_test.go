package extract_test

import (
	"errors"
	"testing"

	"github.com/gradeassist/backend/internal/extract"
)

func TestExtractText_PlainText(t *testing.T) {
	e := extract.NewPlainText()

	text, err := e.ExtractText([]byte("  น้ำเดือดที่ 100 องศา  \n"), "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "น้ำเดือดที่ 100 องศา" {
		t.Errorf("expected trimmed text, got %q", text)
	}
}

func TestExtractText_Markdown(t *testing.T) {
	e := extract.NewPlainText()

	if _, err := e.ExtractText([]byte("# heading"), "text/markdown"); err != nil {
		t.Errorf("markdown should extract, got %v", err)
	}
}

func TestExtractText_UnsupportedType(t *testing.T) {
	e := extract.NewPlainText()

	for _, ct := range []string{"application/pdf", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "image/png"} {
		_, err := e.ExtractText([]byte{1, 2, 3}, ct)
		if !errors.Is(err, extract.ErrUnsupportedType) {
			t.Errorf("%s: expected ErrUnsupportedType, got %v", ct, err)
		}
	}
}

func TestExtractText_InvalidUTF8(t *testing.T) {
	e := extract.NewPlainText()

	if _, err := e.ExtractText([]byte{0xff, 0xfe}, "text/plain"); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}
