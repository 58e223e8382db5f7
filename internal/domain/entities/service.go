package entities

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Status represents the execution state of a service record.
//
// Unrecognized values coming from imported backups are kept as-is; display
// code falls back to the raw value instead of failing.

type Status string

const (
	StatusEmAndamento Status = "em-andamento"
	StatusFinalizado  Status = "finalizado"
	StatusCancelado   Status = "cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusEmAndamento, StatusFinalizado, StatusCancelado:
		return true
	}
	return false
}

// Label returns the human-readable pt-BR label, falling back to the raw value.
func (s Status) Label() string {
	switch s {
	case StatusEmAndamento:
		return "Em Andamento"
	case StatusFinalizado:
		return "Finalizado"
	case StatusCancelado:
		return "Cancelado"
	}
	return string(s)
}

// PaymentStatus represents how far along the customer payment is.

type PaymentStatus string

const (
	PaymentPendente  PaymentStatus = "pendente"
	PaymentPago      PaymentStatus = "pago"
	PaymentParcial   PaymentStatus = "parcial"
	PaymentCancelado PaymentStatus = "cancelado"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPendente, PaymentPago, PaymentParcial, PaymentCancelado:
		return true
	}
	return false
}

func (p PaymentStatus) Label() string {
	switch p {
	case PaymentPendente:
		return "Pendente"
	case PaymentPago:
		return "Pago"
	case PaymentParcial:
		return "Parcial"
	case PaymentCancelado:
		return "Cancelado"
	}
	return string(p)
}

// DateLayout is the ISO calendar-date format used by every date field.
const DateLayout = "2006-01-02"

// ServiceRecord is the single persisted entity: one service/job order with its
// schedule, financial figures and status fields.
//
// JSON tags keep the original pt-BR field names so backup files produced by
// earlier releases import without translation. Profit and duration are always
// derived, never stored.

type ServiceRecord struct {
	ID               int64         `json:"id"`
	Descricao        string        `json:"descricao"`
	Cliente          string        `json:"cliente"`
	Telefone         string        `json:"telefone,omitempty"`
	DataCadastro     string        `json:"dataCadastro"`
	DataInicio       string        `json:"dataInicio"`
	DataFim          string        `json:"dataFim,omitempty"`
	DuracaoDias      int           `json:"duracaoDias,omitempty"`
	ValorTotal       float64       `json:"valorTotal"`
	CustoMateriais   float64       `json:"custoMateriais"`
	CustoCombustivel float64       `json:"custoCombustivel"`
	Status           Status        `json:"status"`
	StatusPagamento  PaymentStatus `json:"statusPagamento"`
	Observacao       string        `json:"observacao,omitempty"`
}

// serviceRecordJSON mirrors ServiceRecord with loose field types plus the
// legacy aliases (valorServico, dataFimPrevista) used by one shipped variant
// of the browser app. Numeric fields tolerate strings and nulls; they coerce
// to zero instead of failing the whole import.
type serviceRecordJSON struct {
	ID               json.Number     `json:"id"`
	Descricao        string          `json:"descricao"`
	Cliente          string          `json:"cliente"`
	Telefone         string          `json:"telefone"`
	DataCadastro     string          `json:"dataCadastro"`
	DataInicio       string          `json:"dataInicio"`
	DataFim          string          `json:"dataFim"`
	DataFimPrevista  string          `json:"dataFimPrevista"`
	DuracaoDias      json.RawMessage `json:"duracaoDias"`
	ValorTotal       json.RawMessage `json:"valorTotal"`
	ValorServico     json.RawMessage `json:"valorServico"`
	CustoMateriais   json.RawMessage `json:"custoMateriais"`
	CustoCombustivel json.RawMessage `json:"custoCombustivel"`
	Status           string          `json:"status"`
	StatusPagamento  string          `json:"statusPagamento"`
	Observacao       string          `json:"observacao"`
}

func (r *ServiceRecord) UnmarshalJSON(data []byte) error {
	var raw serviceRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, _ := raw.ID.Int64()
	if id == 0 {
		// Timestamp-variant backups may carry fractional ids.
		if f, err := raw.ID.Float64(); err == nil {
			id = int64(f)
		}
	}

	valor := coerceFloat(raw.ValorTotal)
	if valor == 0 {
		valor = coerceFloat(raw.ValorServico)
	}
	dataFim := raw.DataFim
	if dataFim == "" {
		dataFim = raw.DataFimPrevista
	}

	*r = ServiceRecord{
		ID:               id,
		Descricao:        raw.Descricao,
		Cliente:          raw.Cliente,
		Telefone:         raw.Telefone,
		DataCadastro:     raw.DataCadastro,
		DataInicio:       raw.DataInicio,
		DataFim:          dataFim,
		DuracaoDias:      int(coerceFloat(raw.DuracaoDias)),
		ValorTotal:       valor,
		CustoMateriais:   coerceFloat(raw.CustoMateriais),
		CustoCombustivel: coerceFloat(raw.CustoCombustivel),
		Status:           Status(raw.Status),
		StatusPagamento:  PaymentStatus(raw.StatusPagamento),
		Observacao:       raw.Observacao,
	}
	return nil
}

// coerceFloat parses a JSON value as a number, accepting quoted numbers and
// treating null, absence and garbage as zero.
func coerceFloat(raw json.RawMessage) float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Profit is valorTotal minus both cost fields.
func (r ServiceRecord) Profit() float64 {
	return r.ValorTotal - r.CustoMateriais - r.CustoCombustivel
}

// TotalCost sums materials and fuel.
func (r ServiceRecord) TotalCost() float64 {
	return r.CustoMateriais + r.CustoCombustivel
}

// ProfitMargin returns the profit as a percentage of valorTotal, 0 when there
// is no value to take a margin of.
func (r ServiceRecord) ProfitMargin() float64 {
	if r.ValorTotal <= 0 {
		return 0
	}
	return r.Profit() / r.ValorTotal * 100
}

// Duration returns the explicit duracaoDias when set, otherwise the span
// derived from the start and end dates.
func (r ServiceRecord) Duration() int {
	if r.DuracaoDias >= 1 {
		return r.DuracaoDias
	}
	return DurationDays(r.DataInicio, r.DataFim)
}

// DurationDays counts calendar days between two ISO dates, inclusive of the
// first day: same day = 1, consecutive days = 2. Returns 0 when either date
// is missing or unparseable.
func DurationDays(start, end string) int {
	s, okS := ParseDate(start)
	e, okE := ParseDate(end)
	if !okS || !okE {
		return 0
	}
	diff := e.Sub(s)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// EndDate parses dataFim; ok is false when it is absent or malformed.
func (r ServiceRecord) EndDate() (time.Time, bool) {
	return ParseDate(r.DataFim)
}

func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CloneRecords returns an independent copy of the collection. ServiceRecord
// holds only value fields, so copying the backing array is enough.
func CloneRecords(records []ServiceRecord) []ServiceRecord {
	if records == nil {
		return nil
	}
	out := make([]ServiceRecord, len(records))
	copy(out, records)
	return out
}
