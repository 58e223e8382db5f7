package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase"
	"controlserv/pkg"

	"github.com/gin-gonic/gin"
)

// maxImportSize caps uploaded backup blobs at 10 MiB.
const maxImportSize = 10 << 20

// BackupHandler serves the manual JSON backup export and the raw import that
// atomically replaces the whole collection.

type BackupHandler struct {
	usecase usecase.IServiceUseCase
}

func NewBackupHandler(uc usecase.IServiceUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// ExportBackup downloads the current collection as pretty-printed JSON.
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	blob, err := h.usecase.ExportJSON()
	if err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Backup export failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("controlserv_backup_%s.json", time.Now().Format(entities.DateLayout))
	attach(c, filename, "application/json; charset=utf-8", blob)
}

// ImportBackup validates the uploaded blob and, when accepted, replaces the
// stored collection and reloads the store. A rejected import leaves the
// existing collection untouched.
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	blob, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil || len(blob) == 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMPORT", "Import body must be a JSON array of services", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ImportRaw(c.Request.Context(), blob); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": len(h.usecase.Snapshot())})
}
