package request

import (
	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase"
)

// ServiceRequest is the payload for create and update operations. Field names
// match the original pt-BR JSON contract. Binding only checks presence; the
// real validation (positive value, trimmed required fields) lives in the
// record store.
type ServiceRequest struct {
	Descricao        string  `json:"descricao" binding:"required"`
	Cliente          string  `json:"cliente" binding:"required"`
	Telefone         string  `json:"telefone"`
	DataInicio       string  `json:"dataInicio" binding:"required"`
	DataFim          string  `json:"dataFim"`
	DuracaoDias      int     `json:"duracaoDias"`
	ValorTotal       float64 `json:"valorTotal" binding:"required"`
	CustoMateriais   float64 `json:"custoMateriais"`
	CustoCombustivel float64 `json:"custoCombustivel"`
	Status           string  `json:"status"`
	StatusPagamento  string  `json:"statusPagamento"`
	Observacao       string  `json:"observacao"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Descricao:        r.Descricao,
		Cliente:          r.Cliente,
		Telefone:         r.Telefone,
		DataInicio:       r.DataInicio,
		DataFim:          r.DataFim,
		DuracaoDias:      r.DuracaoDias,
		ValorTotal:       r.ValorTotal,
		CustoMateriais:   r.CustoMateriais,
		CustoCombustivel: r.CustoCombustivel,
		Status:           entities.Status(r.Status),
		StatusPagamento:  entities.PaymentStatus(r.StatusPagamento),
		Observacao:       r.Observacao,
	}
}

// StatusRequest is the payload for status transitions.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
