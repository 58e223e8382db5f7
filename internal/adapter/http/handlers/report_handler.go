package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"controlserv/internal/usecase"
	"controlserv/pkg"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF = "application/pdf"
	contentTypeCSV = "text/csv; charset=utf-8"
)

// ReportHandler serves downloadable report files. Generation is synchronous
// and cannot be cancelled; a second request simply generates again.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetCSV downloads the full listing as CSV.
func (h *ReportHandler) GetCSV(c *gin.Context) {
	content, filename, err := h.usecase.ListingCSV()
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	attach(c, filename, contentTypeCSV, content)
}

// GetPDF downloads the full listing as PDF.
func (h *ReportHandler) GetPDF(c *gin.Context) {
	content, filename, err := h.usecase.ListingPDF()
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	attach(c, filename, contentTypePDF, content)
}

// GetSummaryPDF downloads the financial summary with the top-5 most
// profitable services.
func (h *ReportHandler) GetSummaryPDF(c *gin.Context) {
	content, filename, err := h.usecase.SummaryPDF()
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	attach(c, filename, contentTypePDF, content)
}

// GetRangePDF downloads the listing restricted to dataInicio within the
// inclusive ?from= / ?to= bounds.
func (h *ReportHandler) GetRangePDF(c *gin.Context) {
	content, filename, err := h.usecase.RangePDF(c.Query("from"), c.Query("to"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	attach(c, filename, contentTypePDF, content)
}

func attach(c *gin.Context, filename, contentType string, content []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, content)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoServices):
		return pkg.NewDomainErrorSimple("NO_SERVICES", "There are no services to report", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Provide valid from/to dates with from <= to", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("REPORT_FAILED", "Report generation failed", err, http.StatusInternalServerError)
	}
}
