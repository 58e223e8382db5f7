package usecase

import (
	"sort"
	"strings"

	"controlserv/internal/domain/entities"
)

// DefaultSidebarLimit caps the recent and pending sidebar lists.
const DefaultSidebarLimit = 5

// FilterRecords keeps records whose descricao, cliente, status or
// statusPagamento contains the filter text, case-insensitively. An empty
// filter returns the snapshot unchanged, in its original relative order.
func FilterRecords(records []entities.ServiceRecord, text string) []entities.ServiceRecord {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return entities.CloneRecords(records)
	}

	out := make([]entities.ServiceRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Descricao), text) ||
			strings.Contains(strings.ToLower(rec.Cliente), text) ||
			strings.Contains(strings.ToLower(string(rec.Status)), text) ||
			strings.Contains(strings.ToLower(string(rec.StatusPagamento)), text) {
			out = append(out, rec)
		}
	}
	return out
}

// SortByRecency orders records newest-first. Higher id means more recent; the
// allocator never reuses ids, so the order is total.
func SortByRecency(records []entities.ServiceRecord) []entities.ServiceRecord {
	out := entities.CloneRecords(records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// RecentRecords returns the n most recently created records.
func RecentRecords(records []entities.ServiceRecord, n int) []entities.ServiceRecord {
	out := SortByRecency(records)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// PendingRecords returns up to n recency-sorted records still awaiting
// payment: anything not paid and not cancelled.
func PendingRecords(records []entities.ServiceRecord, n int) []entities.ServiceRecord {
	pending := make([]entities.ServiceRecord, 0, len(records))
	for _, rec := range records {
		if rec.StatusPagamento != entities.PaymentPago && rec.Status != entities.StatusCancelado {
			pending = append(pending, rec)
		}
	}
	out := SortByRecency(pending)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
