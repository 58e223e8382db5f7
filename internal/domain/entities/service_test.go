package entities

import (
	"encoding/json"
	"testing"
)

func TestServiceRecord_Profit(t *testing.T) {
	t.Run("subtracts both costs", func(t *testing.T) {
		rec := ServiceRecord{ValorTotal: 1200, CustoMateriais: 450, CustoCombustivel: 50}
		if got := rec.Profit(); got != 700 {
			t.Fatalf("expected 700, got %v", got)
		}
	})

	t.Run("missing costs count as zero", func(t *testing.T) {
		var rec ServiceRecord
		if err := json.Unmarshal([]byte(`{"id":1,"valorTotal":1000,"custoCombustivel":50}`), &rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := rec.Profit(); got != 950 {
			t.Fatalf("expected 950, got %v", got)
		}
	})

	t.Run("can be negative", func(t *testing.T) {
		rec := ServiceRecord{ValorTotal: 250, CustoMateriais: 1200, CustoCombustivel: 250}
		if got := rec.Profit(); got != -1200 {
			t.Fatalf("expected -1200, got %v", got)
		}
	})
}

func TestServiceRecord_ProfitMargin(t *testing.T) {
	rec := ServiceRecord{ValorTotal: 1000, CustoMateriais: 400, CustoCombustivel: 100}
	if got := rec.ProfitMargin(); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}

	zero := ServiceRecord{ValorTotal: 0, CustoMateriais: 10}
	if got := zero.ProfitMargin(); got != 0 {
		t.Fatalf("expected 0 margin without value, got %v", got)
	}
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "consecutive days", start: "2024-01-15", end: "2024-01-16", want: 2},
		{name: "same day", start: "2024-01-15", end: "2024-01-15", want: 1},
		{name: "reversed order", start: "2024-01-16", end: "2024-01-15", want: 2},
		{name: "five day span", start: "2024-10-01", end: "2024-10-05", want: 5},
		{name: "missing end", start: "2024-01-15", end: "", want: 0},
		{name: "missing start", start: "", end: "2024-01-15", want: 0},
		{name: "garbage date", start: "2024-01-15", end: "soon", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DurationDays(tc.start, tc.end); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestServiceRecord_Duration(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		rec := ServiceRecord{DuracaoDias: 3, DataInicio: "2024-01-15", DataFim: "2024-01-15"}
		if got := rec.Duration(); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("derived from dates when unset", func(t *testing.T) {
		rec := ServiceRecord{DataInicio: "2024-01-15", DataFim: "2024-01-17"}
		if got := rec.Duration(); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})
}

func TestServiceRecord_UnmarshalJSON(t *testing.T) {
	t.Run("legacy field aliases", func(t *testing.T) {
		blob := `{"id":7,"descricao":"Portão","cliente":"Ana","valorServico":350.5,"dataInicio":"2024-05-01","dataFimPrevista":"2024-05-03"}`
		var rec ServiceRecord
		if err := json.Unmarshal([]byte(blob), &rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ValorTotal != 350.5 {
			t.Fatalf("expected valorServico fallback, got %v", rec.ValorTotal)
		}
		if rec.DataFim != "2024-05-03" {
			t.Fatalf("expected dataFimPrevista fallback, got %q", rec.DataFim)
		}
	})

	t.Run("quoted numbers coerce", func(t *testing.T) {
		blob := `{"id":8,"valorTotal":"1200","custoMateriais":"450.25","custoCombustivel":null}`
		var rec ServiceRecord
		if err := json.Unmarshal([]byte(blob), &rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ValorTotal != 1200 || rec.CustoMateriais != 450.25 || rec.CustoCombustivel != 0 {
			t.Fatalf("unexpected coercion: %+v", rec)
		}
	})

	t.Run("garbage numbers coerce to zero", func(t *testing.T) {
		blob := `{"id":9,"valorTotal":"abc","custoMateriais":{}}`
		var rec ServiceRecord
		if err := json.Unmarshal([]byte(blob), &rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ValorTotal != 0 || rec.CustoMateriais != 0 {
			t.Fatalf("expected zeroes, got %+v", rec)
		}
	})

	t.Run("fractional id truncates", func(t *testing.T) {
		blob := `{"id":1731628800000.5,"descricao":"x"}`
		var rec ServiceRecord
		if err := json.Unmarshal([]byte(blob), &rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != 1731628800000 {
			t.Fatalf("unexpected id: %d", rec.ID)
		}
	})
}

func TestStatusLabels(t *testing.T) {
	if got := StatusEmAndamento.Label(); got != "Em Andamento" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := Status("misterioso").Label(); got != "misterioso" {
		t.Fatalf("expected raw fallback, got %q", got)
	}
	if Status("misterioso").Valid() {
		t.Fatalf("unknown status must not validate")
	}

	if got := PaymentParcial.Label(); got != "Parcial" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := PaymentStatus("fiado").Label(); got != "fiado" {
		t.Fatalf("expected raw fallback, got %q", got)
	}
}

func TestCloneRecords(t *testing.T) {
	src := []ServiceRecord{{ID: 1, Cliente: "A"}, {ID: 2, Cliente: "B"}}
	dst := CloneRecords(src)
	dst[0].Cliente = "mutated"
	if src[0].Cliente != "A" {
		t.Fatalf("clone shares backing array")
	}
	if CloneRecords(nil) != nil {
		t.Fatalf("nil stays nil")
	}
}
