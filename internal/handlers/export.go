// internal/handlers/export.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// JSONExportResponse represents the JSON export response structure
type JSONExportResponse struct {
	Phones   []domain.PhoneView `json:"phones"`
	Metadata ExportMetadata     `json:"metadata"`
}

// ExportMetadata contains metadata about the export
type ExportMetadata struct {
	ExportDate  time.Time `json:"export_date"`
	TotalPhones int       `json:"total_phones"`
	Listed      int       `json:"listed"`
	Platforms   []string  `json:"platforms"`
}

// ExportHandler handles export operations
type ExportHandler struct {
	responder
	service ports.PhoneService
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.PhoneService, logger *slog.Logger) *ExportHandler {
	logger = logger.With(slog.String("handler", "export"))

	return &ExportHandler{
		responder: responder{logger: logger},
		service:   service,
		logger:    logger,
	}
}

// RegisterRoutes registers the export routes on mux
func (h *ExportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/phones/export/excel", h.ExportExcel)
	mux.HandleFunc("GET /api/phones/export/json", h.ExportJSON)
}

// ExportExcel handles GET /api/phones/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := h.service.ListPhones(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to retrieve phones", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := h.generateExcelFile(views, platformNames(h.service.Catalog()))
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to generate Excel file", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("phones_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write Excel response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("total_rows", len(views)),
		slog.String("filename", filename))
}

// ExportJSON handles GET /api/phones/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := h.service.ListPhones(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to retrieve phones", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	listed := 0
	for _, v := range views {
		if v.IsListed {
			listed++
		}
	}

	h.respondJSON(w, http.StatusOK, JSONExportResponse{
		Phones: views,
		Metadata: ExportMetadata{
			ExportDate:  time.Now().UTC(),
			TotalPhones: len(views),
			Listed:      listed,
			Platforms:   platformNames(h.service.Catalog()),
		},
	})
}

func (h *ExportHandler) generateExcelFile(views []domain.PhoneView, platforms []string) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Phones")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := excelHeaders(platforms)
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, view := range views {
		row := sheet.AddRow()

		row.AddCell().Value = view.ID
		row.AddCell().Value = view.Model
		row.AddCell().SetFloat(view.BaseCost.InexactFloat64())
		row.AddCell().Value = string(view.Condition)
		row.AddCell().SetInt(view.Stock)
		row.AddCell().Value = yesNo(view.SoldB2BOrDirect)
		row.AddCell().Value = yesNo(view.IsListed)

		for _, name := range platforms {
			listing := view.PlatformListings[name]

			price := row.AddCell()
			if listing.SellingPrice != nil {
				price.SetFloat(listing.SellingPrice.InexactFloat64())
			}
			row.AddCell().Value = listing.MappedCondition
			row.AddCell().Value = yesNo(listing.CanList)
		}

		row.AddCell().Value = strings.Join(view.NotListedReasons, "; ")
	}

	for i := range headers {
		sheet.SetColWidth(i+1, i+1, 16)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func excelHeaders(platforms []string) []string {
	headers := []string{
		"ID", "Model", "Base Cost", "Condition", "Stock", "Sold B2B/Direct", "Listed",
	}
	for _, name := range platforms {
		headers = append(headers,
			name+" Price",
			name+" Condition",
			name+" Can List",
		)
	}
	return append(headers, "Not Listed Reasons")
}

func platformNames(catalog domain.PlatformCatalog) []string {
	names := make([]string, 0, len(catalog.Platforms))
	for _, p := range catalog.Platforms {
		names = append(names, p.Name)
	}
	return names
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
