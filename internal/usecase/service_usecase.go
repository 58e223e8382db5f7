package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrServiceValidation = errors.New("invalid service input")
	ErrServiceNotFound   = errors.New("service not found")
)

// ServiceInput is the plain input struct for create and update operations.
// Handlers translate request payloads into it; the store never reads request
// objects directly.
type ServiceInput struct {
	Descricao        string
	Cliente          string
	Telefone         string
	DataInicio       string
	DataFim          string
	DuracaoDias      int
	ValorTotal       float64
	CustoMateriais   float64
	CustoCombustivel float64
	Status           entities.Status
	StatusPagamento  entities.PaymentStatus
	Observacao       string
}

// IServiceUseCase is the record store: the single owner of the live service
// collection and its id allocator. Every mutation persists the whole
// collection through the repository before it becomes visible.

type IServiceUseCase interface {
	Add(ctx context.Context, input ServiceInput) (entities.ServiceRecord, error)
	Update(ctx context.Context, id int64, input ServiceInput) (entities.ServiceRecord, error)
	SetStatus(ctx context.Context, id int64, status entities.Status) (entities.ServiceRecord, error)
	Remove(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, records []entities.ServiceRecord) error
	Clear(ctx context.Context) error
	Snapshot() []entities.ServiceRecord
	Reload(ctx context.Context) error
	ImportRaw(ctx context.Context, blob []byte) error
	ExportJSON() ([]byte, error)
	LoadSampleData(ctx context.Context) error
}

type ServiceUseCase struct {
	repo   interfaces.IServiceCollectionRepository
	logger *zap.Logger

	mu      sync.RWMutex
	records []entities.ServiceRecord
	nextID  int64
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceCollectionRepository, logger *zap.Logger) *ServiceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceUseCase{repo: repo, logger: logger, nextID: 1}
}

// Reload re-reads the persisted collection and atomically swaps the in-memory
// state, recomputing the id allocator as max(existing ids) + 1. It is called
// once at startup and again after a raw import completes.
func (u *ServiceUseCase) Reload(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.reloadLocked(ctx)
}

// caller holds u.mu
func (u *ServiceUseCase) reloadLocked(ctx context.Context) error {
	records, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}

	u.records = records
	u.nextID = maxID(records) + 1
	u.logger.Info("collection reloaded", zap.Int("services", len(records)), zap.Int64("next_id", u.nextID))
	return nil
}

func (u *ServiceUseCase) Add(ctx context.Context, input ServiceInput) (entities.ServiceRecord, error) {
	input, err := normalizeInput(input)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	rec := recordFromInput(input)
	rec.ID = u.nextID
	rec.DataCadastro = todayISO()

	next := append(entities.CloneRecords(u.records), rec)
	if err := u.repo.Save(ctx, next); err != nil {
		u.logger.Error("add: save failed", zap.Int64("id", rec.ID), zap.Error(err))
		return entities.ServiceRecord{}, err
	}
	u.records = next
	u.nextID++
	u.logger.Info("service added", zap.Int64("id", rec.ID), zap.String("cliente", rec.Cliente))
	return rec, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id int64, input ServiceInput) (entities.ServiceRecord, error) {
	input, err := normalizeInput(input)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entities.ServiceRecord{}, ErrServiceNotFound
	}

	rec := recordFromInput(input)
	// id and dataCadastro are immutable.
	rec.ID = u.records[idx].ID
	rec.DataCadastro = u.records[idx].DataCadastro

	next := entities.CloneRecords(u.records)
	next[idx] = rec
	if err := u.repo.Save(ctx, next); err != nil {
		u.logger.Error("update: save failed", zap.Int64("id", id), zap.Error(err))
		return entities.ServiceRecord{}, err
	}
	u.records = next
	u.logger.Info("service updated", zap.Int64("id", id))
	return rec, nil
}

// SetStatus sets the execution status. Any enumerated value is accepted; the
// store does not restrict transitions, terminal states stay editable.
func (u *ServiceUseCase) SetStatus(ctx context.Context, id int64, status entities.Status) (entities.ServiceRecord, error) {
	if !status.Valid() {
		return entities.ServiceRecord{}, fmt.Errorf("%w: status %q", ErrServiceValidation, status)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entities.ServiceRecord{}, ErrServiceNotFound
	}

	next := entities.CloneRecords(u.records)
	next[idx].Status = status
	if err := u.repo.Save(ctx, next); err != nil {
		u.logger.Error("set-status: save failed", zap.Int64("id", id), zap.Error(err))
		return entities.ServiceRecord{}, err
	}
	u.records = next
	u.logger.Info("service status changed", zap.Int64("id", id), zap.String("status", string(status)))
	return next[idx], nil
}

// Remove deletes the matching record. Removing an id that does not exist is a
// silent no-op; the confirmation prompt is a boundary concern, not ours.
func (u *ServiceUseCase) Remove(ctx context.Context, id int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		u.logger.Warn("remove: id not found, ignoring", zap.Int64("id", id))
		return nil
	}

	next := make([]entities.ServiceRecord, 0, len(u.records)-1)
	next = append(next, u.records[:idx]...)
	next = append(next, u.records[idx+1:]...)
	if err := u.repo.Save(ctx, next); err != nil {
		u.logger.Error("remove: save failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	u.records = next
	u.logger.Info("service removed", zap.Int64("id", id))
	return nil
}

// ReplaceAll overwrites the entire collection without per-record validation.
// Used by the sample-data loader; raw imports go through ImportRaw instead.
func (u *ServiceUseCase) ReplaceAll(ctx context.Context, records []entities.ServiceRecord) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	next := entities.CloneRecords(records)
	if err := u.repo.Save(ctx, next); err != nil {
		u.logger.Error("replace-all: save failed", zap.Error(err))
		return err
	}
	u.records = next
	u.nextID = maxID(next) + 1
	u.logger.Info("collection replaced", zap.Int("services", len(next)))
	return nil
}

// Clear empties the collection and deletes the storage key. This is the only
// irreversible operation; callers gate it behind explicit confirmation.
func (u *ServiceUseCase) Clear(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.repo.Clear(ctx); err != nil {
		u.logger.Error("clear failed", zap.Error(err))
		return err
	}
	u.records = nil
	u.nextID = 1
	u.logger.Info("all services cleared")
	return nil
}

// Snapshot returns an independent copy of the current collection in insertion
// order, for read-only consumption by metrics, queries and reports.
func (u *ServiceUseCase) Snapshot() []entities.ServiceRecord {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return entities.CloneRecords(u.records)
}

// ImportRaw validates and stores the uploaded blob, then reloads the store so
// the new collection becomes visible without a process restart. The lock is
// held across both steps; a mutation racing the import cannot persist the
// pre-import collection over the freshly stored blob.
func (u *ServiceUseCase) ImportRaw(ctx context.Context, blob []byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.repo.ReplaceRaw(ctx, blob); err != nil {
		u.logger.Warn("import rejected", zap.Error(err))
		return err
	}
	return u.reloadLocked(ctx)
}

// ExportJSON renders the current collection as a pretty-printed backup blob.
// An empty collection exports as an empty array; importers reject non-arrays.
func (u *ServiceUseCase) ExportJSON() ([]byte, error) {
	records := u.Snapshot()
	if records == nil {
		records = []entities.ServiceRecord{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// LoadSampleData replaces the collection with the canonical example dataset.
func (u *ServiceUseCase) LoadSampleData(ctx context.Context) error {
	return u.ReplaceAll(ctx, SampleServices(todayISO()))
}

// callers hold u.mu
func (u *ServiceUseCase) indexOf(id int64) int {
	for i := range u.records {
		if u.records[i].ID == id {
			return i
		}
	}
	return -1
}

func maxID(records []entities.ServiceRecord) int64 {
	var max int64
	for i := range records {
		if records[i].ID > max {
			max = records[i].ID
		}
	}
	return max
}

func normalizeInput(in ServiceInput) (ServiceInput, error) {
	in.Descricao = strings.TrimSpace(in.Descricao)
	in.Cliente = strings.TrimSpace(in.Cliente)
	in.DataInicio = strings.TrimSpace(in.DataInicio)

	switch {
	case in.Descricao == "":
		return in, fmt.Errorf("%w: descricao is required", ErrServiceValidation)
	case in.Cliente == "":
		return in, fmt.Errorf("%w: cliente is required", ErrServiceValidation)
	case in.DataInicio == "":
		return in, fmt.Errorf("%w: dataInicio is required", ErrServiceValidation)
	case in.ValorTotal <= 0:
		return in, fmt.Errorf("%w: valorTotal must be positive", ErrServiceValidation)
	}

	if in.Status == "" {
		in.Status = entities.StatusEmAndamento
	}
	if in.StatusPagamento == "" {
		in.StatusPagamento = entities.PaymentPendente
	}
	if in.DuracaoDias < 1 {
		in.DuracaoDias = entities.DurationDays(in.DataInicio, in.DataFim)
	}
	return in, nil
}

func recordFromInput(in ServiceInput) entities.ServiceRecord {
	return entities.ServiceRecord{
		Descricao:        in.Descricao,
		Cliente:          in.Cliente,
		Telefone:         in.Telefone,
		DataInicio:       in.DataInicio,
		DataFim:          in.DataFim,
		DuracaoDias:      in.DuracaoDias,
		ValorTotal:       in.ValorTotal,
		CustoMateriais:   in.CustoMateriais,
		CustoCombustivel: in.CustoCombustivel,
		Status:           in.Status,
		StatusPagamento:  in.StatusPagamento,
		Observacao:       in.Observacao,
	}
}

func todayISO() string {
	return time.Now().Format(entities.DateLayout)
}

// SampleServices is the example dataset offered from the dashboard. Ids are
// fixed so repeated loads are deterministic.
func SampleServices(today string) []entities.ServiceRecord {
	return []entities.ServiceRecord{
		{ID: 1001, Descricao: "Instalação de Câmeras de Segurança", Cliente: "João Silva", Telefone: "11999999999", DataCadastro: today, DataInicio: today, DataFim: today, DuracaoDias: 1, ValorTotal: 1200, CustoMateriais: 450, CustoCombustivel: 50, Status: entities.StatusFinalizado, StatusPagamento: entities.PaymentPago, Observacao: "Serviço concluído no prazo."},
		{ID: 1002, Descricao: "Manutenção de Servidor de Rede", Cliente: "Tech Solutions", Telefone: "11888888888", DataCadastro: today, DataInicio: "2024-11-10", DataFim: "2024-11-12", DuracaoDias: 3, ValorTotal: 3500, CustoMateriais: 100, CustoCombustivel: 200, Status: entities.StatusEmAndamento, StatusPagamento: entities.PaymentPendente, Observacao: "Aguardando peça de reposição."},
		{ID: 1003, Descricao: "Cerca Elétrica e Alarme", Cliente: "Maria Oliveira", Telefone: "11777777777", DataCadastro: today, DataInicio: "2024-10-01", DataFim: "2024-10-05", DuracaoDias: 5, ValorTotal: 250, CustoMateriais: 1200, CustoCombustivel: 250, Status: entities.StatusCancelado, StatusPagamento: entities.PaymentCancelado, Observacao: "Cliente desistiu da execução."},
		{ID: 1004, Descricao: "Troca de Motor de Portão", Cliente: "Roberto Santos", Telefone: "11666666666", DataCadastro: today, DataInicio: "2024-11-15", DataFim: "2024-11-15", DuracaoDias: 1, ValorTotal: 400, CustoMateriais: 120, CustoCombustivel: 20, Status: entities.StatusFinalizado, StatusPagamento: entities.PaymentPendente, Observacao: "Emissão de boleto pendente."},
	}
}
