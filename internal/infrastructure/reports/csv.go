package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"controlserv/internal/usecase/interfaces"
)

// utf8BOM keeps Excel happy with accented pt-BR text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVRenderer renders the tabular sections of a document as UTF-8 CSV with a
// byte-order marker. Text fields containing the delimiter or quotes are
// quoted with internal quotes doubled, per encoding/csv.

type CSVRenderer struct{}

var _ interfaces.IReportRenderer = (*CSVRenderer)(nil)

func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

func (r *CSVRenderer) Render(doc interfaces.ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	for _, section := range doc.Sections {
		if len(section.Columns) == 0 {
			continue
		}
		if err := w.Write(section.Columns); err != nil {
			return nil, fmt.Errorf("csv: write header: %w", err)
		}
		for _, row := range section.Rows {
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("csv: write row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}
