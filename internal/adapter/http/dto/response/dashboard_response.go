package response

import "controlserv/internal/usecase"

type PeriodTotalsResponse struct {
	Receita float64 `json:"receita"`
	Custos  float64 `json:"custos"`
	Lucro   float64 `json:"lucro"`
}

// DashboardResponse mirrors the dashboard aggregate.
type DashboardResponse struct {
	Semana              PeriodTotalsResponse `json:"semana"`
	Mes                 PeriodTotalsResponse `json:"mes"`
	Geral               PeriodTotalsResponse `json:"geral"`
	Finalizados         int                  `json:"finalizados"`
	EmAndamento         int                  `json:"emAndamento"`
	Cancelados          int                  `json:"cancelados"`
	PagamentosPendentes int                  `json:"pagamentosPendentes"`
	ValorPendente       float64              `json:"valorPendente"`
}

func FromMetrics(m usecase.DashboardMetrics) DashboardResponse {
	return DashboardResponse{
		Semana:              PeriodTotalsResponse(m.Semana),
		Mes:                 PeriodTotalsResponse(m.Mes),
		Geral:               PeriodTotalsResponse(m.Geral),
		Finalizados:         m.Finalizados,
		EmAndamento:         m.EmAndamento,
		Cancelados:          m.Cancelados,
		PagamentosPendentes: m.PagamentosPendentes,
		ValorPendente:       m.ValorPendente,
	}
}
