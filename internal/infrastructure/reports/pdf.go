package reports

import (
	"bytes"
	"fmt"

	"controlserv/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer renders report documents as A4 portrait PDFs: a title header,
// then per section an optional heading, summary lines and a bordered table.

type PDFRenderer struct{}

var _ interfaces.IReportRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(doc interfaces.ReportDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	// Core fonts are cp1252; report text is pt-BR.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 28

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(contentW, 9, tr(doc.Title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	for _, section := range doc.Sections {
		if section.Heading != "" {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(contentW, 7, tr(section.Heading), "", 1, "L", false, 0, "")
			pdf.Ln(1)
		}

		pdf.SetFont("Helvetica", "", 9)
		for _, line := range section.Lines {
			pdf.CellFormat(contentW, 5.5, tr(line), "", 1, "L", false, 0, "")
		}
		if len(section.Lines) > 0 {
			pdf.Ln(2)
		}

		if len(section.Columns) > 0 {
			r.renderTable(pdf, tr, contentW, section)
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render document: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderTable(pdf *fpdf.Fpdf, tr func(string) string, contentW float64, section interfaces.ReportSection) {
	widths := columnWidths(contentW, len(section.Columns))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range section.Columns {
		pdf.CellFormat(widths[i], 6, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range section.Rows {
		for i := range section.Columns {
			cell := ""
			if i < len(row) {
				cell = truncate(row[i], 38)
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// columnWidths gives the second column (the description) double weight when
// there are enough columns for that to matter.
func columnWidths(contentW float64, n int) []float64 {
	widths := make([]float64, n)
	if n == 0 {
		return widths
	}
	if n < 3 {
		for i := range widths {
			widths[i] = contentW / float64(n)
		}
		return widths
	}
	unit := contentW / float64(n+1)
	for i := range widths {
		widths[i] = unit
	}
	widths[1] = unit * 2
	return widths
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
