package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	response "controlserv/internal/adapter/http/dto/response"
	"controlserv/internal/adapter/persistence/repository"
	"controlserv/internal/usecase"

	"github.com/gin-gonic/gin"
)

// newTestRouter wires the full handler surface over a file-backed store in a
// temp dir, the same composition the application boots with.
func newTestRouter(t *testing.T) (*gin.Engine, *usecase.ServiceUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewFileBlobRepository(filepath.Join(t.TempDir(), "servicos.json"))
	store := usecase.NewServiceUseCase(repo, nil)

	h := NewServiceHandler(store)
	dash := NewDashboardHandler(store)

	r := gin.New()
	v1 := r.Group("/v1")
	v1.POST("/services", h.CreateService)
	v1.GET("/services", h.ListServices)
	v1.GET("/services/recent", h.RecentServices)
	v1.GET("/services/pending", h.PendingServices)
	v1.POST("/services/sample", h.LoadSampleData)
	v1.DELETE("/services", h.ClearServices)
	v1.PUT("/services/:id", h.UpdateService)
	v1.PATCH("/services/:id/status", h.SetServiceStatus)
	v1.DELETE("/services/:id", h.DeleteService)
	v1.GET("/dashboard", dash.GetDashboard)
	return r, store
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validServiceBody = `{"descricao":"Instalação de alarme","cliente":"João","dataInicio":"2024-11-10","valorTotal":500}`

func TestServiceHandler_CreateService(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/services", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/services", `{"descricao":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank fields fail store validation", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/services", `{"descricao":"   ","cliente":"João","dataInicio":"2024-11-10","valorTotal":500}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/services", validServiceBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var res response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 1 || res.Status != "em-andamento" || res.StatusPagamento != "pendente" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestServiceHandler_UpdateService(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/services/abc", validServiceBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/services/42", validServiceBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, _ := newTestRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/services", validServiceBody); w.Code != http.StatusCreated {
			t.Fatalf("setup failed: %d", w.Code)
		}

		body := `{"descricao":"Alarme atualizado","cliente":"João","dataInicio":"2024-11-10","valorTotal":750}`
		w := doJSON(r, http.MethodPut, "/v1/services/1", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var res response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 1 || res.Descricao != "Alarme atualizado" || res.ValorTotal != 750 {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestServiceHandler_SetServiceStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		r, _ := newTestRouter(t)
		doJSON(r, http.MethodPost, "/v1/services", validServiceBody)

		w := doJSON(r, http.MethodPatch, "/v1/services/1/status", `{"status":"pausado"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/services/42/status", `{"status":"finalizado"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, _ := newTestRouter(t)
		doJSON(r, http.MethodPost, "/v1/services", validServiceBody)

		w := doJSON(r, http.MethodPatch, "/v1/services/1/status", `{"status":"finalizado"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var res response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != "finalizado" || res.StatusLabel != "Finalizado" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestServiceHandler_DeleteService(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(r, http.MethodPost, "/v1/services", validServiceBody)

	if w := doJSON(r, http.MethodDelete, "/v1/services/1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	// Unknown ids also answer 204.
	if w := doJSON(r, http.MethodDelete, "/v1/services/99", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for unknown id, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/services/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestServiceHandler_ListServices(t *testing.T) {
	r, _ := newTestRouter(t)
	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"descricao":"Serviço %d","cliente":"Cliente %d","dataInicio":"2024-11-10","valorTotal":100}`, i, i)
		doJSON(r, http.MethodPost, "/v1/services", body)
	}

	t.Run("newest first", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/v1/services", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 || out[0].ID != 3 || out[2].ID != 1 {
			t.Fatalf("unexpected listing: %+v", out)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/v1/services?filter=cliente+2", "")
		var out []response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != 2 {
			t.Fatalf("unexpected filtered listing: %+v", out)
		}
	})
}

func TestServiceHandler_Sidebars(t *testing.T) {
	r, _ := newTestRouter(t)
	for i := 1; i <= 7; i++ {
		body := fmt.Sprintf(`{"descricao":"Serviço %d","cliente":"Cliente %d","dataInicio":"2024-11-10","valorTotal":100}`, i, i)
		doJSON(r, http.MethodPost, "/v1/services", body)
	}
	// Pay one, cancel another; both leave the pending list.
	doJSON(r, http.MethodPut, "/v1/services/7", `{"descricao":"Serviço 7","cliente":"Cliente 7","dataInicio":"2024-11-10","valorTotal":100,"statusPagamento":"pago"}`)
	doJSON(r, http.MethodPatch, "/v1/services/6/status", `{"status":"cancelado"}`)

	t.Run("recent is capped at five", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/v1/services/recent", "")
		var out []response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 5 || out[0].ID != 7 {
			t.Fatalf("unexpected recent list: %+v", out)
		}
	})

	t.Run("pending excludes paid and cancelled", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/v1/services/pending", "")
		var out []response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 5 || out[0].ID != 5 {
			t.Fatalf("unexpected pending list: %+v", out)
		}
	})
}

func TestServiceHandler_LoadSampleData(t *testing.T) {
	r, store := newTestRouter(t)
	w := doJSON(r, http.MethodPost, "/v1/services/sample", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if snap := store.Snapshot(); len(snap) != 4 {
		t.Fatalf("expected 4 sample services, got %d", len(snap))
	}
}

func TestServiceHandler_ClearServices(t *testing.T) {
	r, store := newTestRouter(t)
	doJSON(r, http.MethodPost, "/v1/services", validServiceBody)

	t.Run("requires confirmation", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/v1/services", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(store.Snapshot()) != 1 {
			t.Fatalf("collection must survive an unconfirmed clear")
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/v1/services?confirm=true", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if len(store.Snapshot()) != 0 {
			t.Fatalf("expected empty collection")
		}
	})
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(r, http.MethodPost, "/v1/services", validServiceBody)

	w := doJSON(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res response.DashboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EmAndamento != 1 || res.PagamentosPendentes != 1 || res.ValorPendente != 500 {
		t.Fatalf("unexpected metrics: %+v", res)
	}
	if res.Geral.Receita != 500 {
		t.Fatalf("unexpected overall totals: %+v", res.Geral)
	}
}
