package reports

import (
	"bytes"
	"strings"
	"testing"

	"controlserv/internal/usecase/interfaces"
)

func TestCSVRenderer_Render(t *testing.T) {
	doc := interfaces.ReportDocument{
		Sections: []interfaces.ReportSection{{
			Columns: []string{"ID", "Descricao", "ValorTotal"},
			Rows: [][]string{
				{"1", "Instalação de câmeras", "1200,00"},
				{"2", `Cliente disse "urgente", com vírgula`, "350,50"},
			},
		}},
	}

	content, err := NewCSVRenderer().Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("expected UTF-8 BOM prefix")
	}

	lines := strings.Split(strings.TrimRight(string(content[3:]), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Descricao,ValorTotal" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1,Instalação de câmeras,\"1200,00\"" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	// Quotes double, the quoted field keeps its comma.
	if lines[2] != "2,\"Cliente disse \"\"urgente\"\", com vírgula\",\"350,50\"" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestCSVRenderer_SkipsNonTabularSections(t *testing.T) {
	doc := interfaces.ReportDocument{
		Sections: []interfaces.ReportSection{
			{Heading: "Totais", Lines: []string{"Receita Total: R$ 10,00"}},
			{Columns: []string{"ID"}, Rows: [][]string{{"1"}}},
		},
	}

	content, err := NewCSVRenderer().Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(content[3:])
	if strings.Contains(body, "Totais") {
		t.Fatalf("line sections must not render: %q", body)
	}
	if !strings.HasPrefix(body, "ID\n") {
		t.Fatalf("unexpected body: %q", body)
	}
}
