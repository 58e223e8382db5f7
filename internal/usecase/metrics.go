package usecase

import (
	"time"

	"controlserv/internal/domain/entities"
)

// PeriodTotals groups the three financial figures for one time bucket.
type PeriodTotals struct {
	Receita float64 `json:"receita"`
	Custos  float64 `json:"custos"`
	Lucro   float64 `json:"lucro"`
}

// DashboardMetrics is the full aggregate the dashboard renders: bucketed
// financials, status counters and pending payments.
type DashboardMetrics struct {
	Semana PeriodTotals `json:"semana"`
	Mes    PeriodTotals `json:"mes"`
	Geral  PeriodTotals `json:"geral"`

	Finalizados int `json:"finalizados"`
	EmAndamento int `json:"emAndamento"`
	Cancelados  int `json:"cancelados"`

	PagamentosPendentes int     `json:"pagamentosPendentes"`
	ValorPendente       float64 `json:"valorPendente"`
}

func (p *PeriodTotals) add(rec entities.ServiceRecord) {
	p.Receita += rec.ValorTotal
	p.Custos += rec.TotalCost()
	p.Lucro += rec.Profit()
}

// Aggregate computes all dashboard figures in a single pass over a snapshot.
//
// The weekly bucket is the trailing 7 days of now; the monthly bucket starts
// at the same day-of-month one month prior, not a fixed 30-day window (day
// overflow normalizes forward, e.g. Mar 31 becomes Mar 3). Only finalizado records
// whose end date falls inside the window land in a bucket. Records with a
// missing or unparseable end date are excluded from the buckets but still
// counted in the overall totals.
func Aggregate(records []entities.ServiceRecord, now time.Time) DashboardMetrics {
	var m DashboardMetrics

	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())

	for _, rec := range records {
		m.Geral.add(rec)

		if rec.Status == entities.StatusFinalizado {
			if end, ok := rec.EndDate(); ok {
				if !end.Before(weekAgo) {
					m.Semana.add(rec)
				}
				if !end.Before(monthAgo) {
					m.Mes.add(rec)
				}
			}
		}

		switch rec.Status {
		case entities.StatusFinalizado:
			m.Finalizados++
		case entities.StatusEmAndamento:
			m.EmAndamento++
		case entities.StatusCancelado:
			m.Cancelados++
		}

		if rec.StatusPagamento != entities.PaymentPago {
			m.PagamentosPendentes++
			m.ValorPendente += rec.ValorTotal
		}
	}
	return m
}
