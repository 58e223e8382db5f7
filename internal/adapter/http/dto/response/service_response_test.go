package response

import (
	"testing"

	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase"
)

func TestFromService(t *testing.T) {
	rec := entities.ServiceRecord{
		ID:               7,
		Descricao:        "Instalação de câmeras",
		Cliente:          "João Silva",
		Telefone:         "11999999999",
		DataCadastro:     "2024-11-01",
		DataInicio:       "2024-11-10",
		DataFim:          "2024-11-12",
		ValorTotal:       1000,
		CustoMateriais:   400,
		CustoCombustivel: 100,
		Status:           entities.StatusFinalizado,
		StatusPagamento:  entities.PaymentPendente,
	}

	res := FromService(rec)

	if res.ID != 7 || res.Cliente != "João Silva" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.Lucro != 500 || res.MargemLucro != 50 {
		t.Fatalf("unexpected derived figures: lucro=%v margem=%v", res.Lucro, res.MargemLucro)
	}
	if res.DuracaoDias != 3 {
		t.Fatalf("expected derived duration 3, got %d", res.DuracaoDias)
	}
	if res.StatusLabel != "Finalizado" || res.StatusPagamentoLabel != "Pendente" {
		t.Fatalf("unexpected labels: %q %q", res.StatusLabel, res.StatusPagamentoLabel)
	}
	if res.TelefoneFormatado != "(11) 99999-9999" {
		t.Fatalf("unexpected telefone: %q", res.TelefoneFormatado)
	}
}

func TestFromServices(t *testing.T) {
	out := FromServices([]entities.ServiceRecord{{ID: 1}, {ID: 2}})
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("unexpected mapping: %+v", out)
	}
	if empty := FromServices(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}
}

func TestFormatTelefone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "eleven digits", in: "11999999999", want: "(11) 99999-9999"},
		{name: "ten digits", in: "1133334444", want: "(11) 3333-4444"},
		{name: "already masked", in: "(11) 99999-9999", want: "(11) 99999-9999"},
		{name: "freeform", in: "ramal 42", want: "ramal 42"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTelefone(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFromMetrics(t *testing.T) {
	m := usecase.DashboardMetrics{
		Semana:              usecase.PeriodTotals{Receita: 100, Custos: 40, Lucro: 60},
		Geral:               usecase.PeriodTotals{Receita: 500, Custos: 100, Lucro: 400},
		Finalizados:         2,
		EmAndamento:         1,
		PagamentosPendentes: 3,
		ValorPendente:       750,
	}

	res := FromMetrics(m)
	if res.Semana.Lucro != 60 || res.Geral.Receita != 500 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.Finalizados != 2 || res.EmAndamento != 1 || res.PagamentosPendentes != 3 || res.ValorPendente != 750 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}
