package render

import (
	"bytes"
	"testing"
)

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF("Cho Chikun vs Otake Hideo", "(\n  ;FF[4]\n  PW[Cho Chikun]\n)", &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}
