package response

import (
	"regexp"

	"controlserv/internal/domain/entities"
)

// ServiceResponse is the outbound shape of one service record, including the
// derived figures and display labels so clients never recompute them.
type ServiceResponse struct {
	ID                   int64   `json:"id"`
	Descricao            string  `json:"descricao"`
	Cliente              string  `json:"cliente"`
	Telefone             string  `json:"telefone,omitempty"`
	TelefoneFormatado    string  `json:"telefoneFormatado,omitempty"`
	DataCadastro         string  `json:"dataCadastro"`
	DataInicio           string  `json:"dataInicio"`
	DataFim              string  `json:"dataFim,omitempty"`
	DuracaoDias          int     `json:"duracaoDias"`
	ValorTotal           float64 `json:"valorTotal"`
	CustoMateriais       float64 `json:"custoMateriais"`
	CustoCombustivel     float64 `json:"custoCombustivel"`
	Lucro                float64 `json:"lucro"`
	MargemLucro          float64 `json:"margemLucro"`
	Status               string  `json:"status"`
	StatusLabel          string  `json:"statusLabel"`
	StatusPagamento      string  `json:"statusPagamento"`
	StatusPagamentoLabel string  `json:"statusPagamentoLabel"`
	Observacao           string  `json:"observacao,omitempty"`
}

func FromService(rec entities.ServiceRecord) ServiceResponse {
	return ServiceResponse{
		ID:                   rec.ID,
		Descricao:            rec.Descricao,
		Cliente:              rec.Cliente,
		Telefone:             rec.Telefone,
		TelefoneFormatado:    FormatTelefone(rec.Telefone),
		DataCadastro:         rec.DataCadastro,
		DataInicio:           rec.DataInicio,
		DataFim:              rec.DataFim,
		DuracaoDias:          rec.Duration(),
		ValorTotal:           rec.ValorTotal,
		CustoMateriais:       rec.CustoMateriais,
		CustoCombustivel:     rec.CustoCombustivel,
		Lucro:                rec.Profit(),
		MargemLucro:          rec.ProfitMargin(),
		Status:               string(rec.Status),
		StatusLabel:          rec.Status.Label(),
		StatusPagamento:      string(rec.StatusPagamento),
		StatusPagamentoLabel: rec.StatusPagamento.Label(),
		Observacao:           rec.Observacao,
	}
}

func FromServices(records []entities.ServiceRecord) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromService(rec))
	}
	return out
}

var nonDigits = regexp.MustCompile(`\D`)

// FormatTelefone applies the Brazilian display mask: (11) 99999-9999 for
// 11-digit numbers, (11) 9999-9999 for 10. Anything else is returned as
// typed; the phone is freeform, formatting is display-only.
func FormatTelefone(telefone string) string {
	if telefone == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(telefone, "")
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	}
	return telefone
}
