package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmoralesc/inventario/internal/httpx"
	"github.com/dmoralesc/inventario/internal/pdf"
	"github.com/dmoralesc/inventario/internal/services"
)

type ReportHandler struct {
	Svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// Monthly: GET /report – the current month's sales report as a PDF download.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	rep, err := h.Svc.Monthly(r.Context(), now.Year(), now.Month())
	if err != nil {
		if errors.Is(err, services.ErrDanglingSale) {
			httpx.JSONError(w, http.StatusInternalServerError, "report_data_integrity", err.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "report_failed", nil)
		return
	}

	data := pdf.ReportData{TotalRevenue: rep.TotalRevenue, TotalProfit: rep.TotalProfit}
	for _, ln := range rep.Lines {
		data.Lines = append(data.Lines, pdf.ReportLine{
			ProductName: ln.ProductName,
			Quantity:    ln.Quantity,
			Date:        ln.OccurredAt.Format("2006-01-02 15:04:05"),
			Revenue:     ln.Revenue,
		})
	}
	out, err := pdf.MonthlyReportPDF(data)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "report_render_failed", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="reporte.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	if _, err := w.Write(out); err != nil {
		_ = err
	}
}
