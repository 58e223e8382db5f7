package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrNoServices       = errors.New("no services to report")
	ErrInvalidDateRange = errors.New("invalid report date range")
)

// IReportUseCase assembles flat report datasets from a snapshot and hands them
// to the configured document generators. Each call returns the rendered file
// content plus its download filename.

type IReportUseCase interface {
	ListingCSV() ([]byte, string, error)
	ListingPDF() ([]byte, string, error)
	SummaryPDF() ([]byte, string, error)
	RangePDF(from, to string) ([]byte, string, error)
}

type ReportUseCase struct {
	store  IServiceUseCase
	pdf    interfaces.IReportRenderer
	csv    interfaces.IReportRenderer
	logger *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store IServiceUseCase, pdf, csv interfaces.IReportRenderer, logger *zap.Logger) *ReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUseCase{store: store, pdf: pdf, csv: csv, logger: logger}
}

// ListingCSV renders the full collection with the legacy CSV column set.
func (u *ReportUseCase) ListingCSV() ([]byte, string, error) {
	records := u.store.Snapshot()
	if len(records) == 0 {
		return nil, "", ErrNoServices
	}

	u.logger.Info("generating csv report", zap.Int("services", len(records)))
	content, err := u.csv.Render(csvListingDocument(records))
	if err != nil {
		return nil, "", err
	}
	return content, reportFilename("csv"), nil
}

// ListingPDF renders the full tabular listing.
func (u *ReportUseCase) ListingPDF() ([]byte, string, error) {
	records := u.store.Snapshot()
	if len(records) == 0 {
		return nil, "", ErrNoServices
	}

	u.logger.Info("generating pdf report", zap.Int("services", len(records)))
	content, err := u.pdf.Render(listingDocument("Relatório de Serviços - ControlServ", records))
	if err != nil {
		return nil, "", err
	}
	return content, reportFilename("pdf"), nil
}

// SummaryPDF renders the financial summary: aggregate totals plus the five
// most profitable records.
func (u *ReportUseCase) SummaryPDF() ([]byte, string, error) {
	records := u.store.Snapshot()
	if len(records) == 0 {
		return nil, "", ErrNoServices
	}

	u.logger.Info("generating summary pdf", zap.Int("services", len(records)))
	content, err := u.pdf.Render(summaryDocument(records, time.Now()))
	if err != nil {
		return nil, "", err
	}
	return content, reportFilename("pdf"), nil
}

// RangePDF renders the listing restricted to records whose dataInicio falls
// inside the inclusive [from, to] bounds.
func (u *ReportUseCase) RangePDF(from, to string) ([]byte, string, error) {
	start, okFrom := entities.ParseDate(from)
	end, okTo := entities.ParseDate(to)
	if !okFrom || !okTo || end.Before(start) {
		return nil, "", ErrInvalidDateRange
	}

	var filtered []entities.ServiceRecord
	for _, rec := range u.store.Snapshot() {
		ini, ok := entities.ParseDate(rec.DataInicio)
		if ok && !ini.Before(start) && !ini.After(end) {
			filtered = append(filtered, rec)
		}
	}
	if len(filtered) == 0 {
		return nil, "", ErrNoServices
	}

	u.logger.Info("generating range pdf", zap.String("from", from), zap.String("to", to), zap.Int("services", len(filtered)))
	title := fmt.Sprintf("Relatório de Serviços - ControlServ (%s a %s)", from, to)
	content, err := u.pdf.Render(listingDocument(title, filtered))
	if err != nil {
		return nil, "", err
	}
	return content, reportFilename("pdf"), nil
}

func listingDocument(title string, records []entities.ServiceRecord) interfaces.ReportDocument {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Descricao,
			rec.Cliente,
			strings.ReplaceAll(string(rec.Status), "-", " "),
			"R$ " + decimalComma(rec.ValorTotal),
			rec.DataInicio,
		})
	}
	return interfaces.ReportDocument{
		Title: title,
		Sections: []interfaces.ReportSection{{
			Columns: []string{"ID", "Descrição", "Cliente", "Status", "Valor Total", "Data Início"},
			Rows:    rows,
		}},
	}
}

func csvListingDocument(records []entities.ServiceRecord) interfaces.ReportDocument {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Descricao,
			rec.Cliente,
			string(rec.Status),
			decimalComma(rec.ValorTotal),
			rec.DataInicio,
			rec.DataFim,
			rec.Observacao,
		})
	}
	return interfaces.ReportDocument{
		Sections: []interfaces.ReportSection{{
			Columns: []string{"ID", "Descricao", "Cliente", "Status", "ValorTotal", "DataInicio", "DataFimPrevista", "Observacao"},
			Rows:    rows,
		}},
	}
}

func summaryDocument(records []entities.ServiceRecord, now time.Time) interfaces.ReportDocument {
	m := Aggregate(records, now)

	top := entities.CloneRecords(records)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Profit() > top[j].Profit() })
	if len(top) > 5 {
		top = top[:5]
	}

	topRows := make([][]string, 0, len(top))
	for _, rec := range top {
		topRows = append(topRows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Descricao,
			rec.Cliente,
			FormatMoeda(rec.Profit()),
			FormatMoeda(rec.ValorTotal),
		})
	}

	return interfaces.ReportDocument{
		Title: "Resumo Financeiro - ControlServ",
		Sections: []interfaces.ReportSection{
			{
				Heading: "Totais",
				Lines: []string{
					"Receita Total: " + FormatMoeda(m.Geral.Receita),
					"Custos Totais: " + FormatMoeda(m.Geral.Custos),
					"Lucro Total: " + FormatMoeda(m.Geral.Lucro),
					"Lucro Semanal: " + FormatMoeda(m.Semana.Lucro),
					"Lucro Mensal: " + FormatMoeda(m.Mes.Lucro),
					fmt.Sprintf("Pagamentos Pendentes: %d (%s)", m.PagamentosPendentes, FormatMoeda(m.ValorPendente)),
					fmt.Sprintf("Serviços: %d finalizados, %d em andamento, %d cancelados",
						m.Finalizados, m.EmAndamento, m.Cancelados),
				},
			},
			{
				Heading: "Top 5 Serviços Mais Lucrativos",
				Columns: []string{"ID", "Descrição", "Cliente", "Lucro", "Valor Total"},
				Rows:    topRows,
			},
		},
	}
}

func reportFilename(ext string) string {
	return fmt.Sprintf("relatorio_controlserv_%s.%s", todayISO(), ext)
}

// decimalComma renders a value with two decimals and a comma separator, the
// plain format used inside report cells: 1234.5 -> "1234,50".
func decimalComma(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

// FormatMoeda renders a pt-BR currency string with thousands separators:
// 1234.5 -> "R$ 1.234,56" style.
func FormatMoeda(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
