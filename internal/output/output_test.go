package output

import (
	"bytes"
	"testing"
)

func TestPrinterJSON(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, "")
	if err != nil {
		t.Fatalf("NewPrinter: %v", err)
	}
	if err := p.Print(map[string]any{"nome": "GT <Jiu>"}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := buf.String(); got != "{\n  \"nome\": \"GT <Jiu>\"\n}\n" {
		t.Fatalf("unexpected json %q", got)
	}
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, "YML")
	if err != nil {
		t.Fatalf("NewPrinter: %v", err)
	}
	if err := p.Print(map[string]any{"total": 3, "itens": []string{"ouro"}}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := buf.String(); got != "itens:\n  - ouro\ntotal: 3\n" {
		t.Fatalf("unexpected yaml %q", got)
	}
}

func TestPrinterRejectsUnknownFormat(t *testing.T) {
	if _, err := NewPrinter(&bytes.Buffer{}, "xml"); err == nil {
		t.Fatalf("expected error")
	}
}
