package render

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF prints text line by line on A4 pages under a title header.
func RenderPDF(title string, text string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetFont("Courier", "", 10)

	pdf.AddPage()
	pdf.SetFont("Courier", "B", 12)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(10)
	pdf.SetFont("Courier", "", 10)

	for _, line := range strings.Split(text, "\n") {
		pdf.MultiCell(0, 4.5, tr(line), "", "L", false)
	}

	return pdf.Output(w)
}
