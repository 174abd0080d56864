package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pesocar/gip-registry/internal/service"
	"github.com/pesocar/gip-registry/internal/service/serviceutils"
	"github.com/pesocar/gip-registry/pkg/rosterxls"
)

// TransferHandler owns the spreadsheet entry and exit points.
type TransferHandler struct {
	svc      *service.RecordService
	exporter *rosterxls.Exporter
}

func NewTransferHandler(svc *service.RecordService, exporter *rosterxls.Exporter) *TransferHandler {
	if exporter == nil {
		exporter = rosterxls.NewExporter()
	}
	return &TransferHandler{svc: svc, exporter: exporter}
}

// ImportHandler ingests an uploaded .xlsx. Duplicate rows (same person,
// same start date) are skipped unless accept_duplicates=true; the reply
// carries only the added/skipped/failed counts.
func (h *TransferHandler) ImportHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Missing upload file", err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Failed to open upload", err)
	}
	defer f.Close()

	rows, err := rosterxls.ParseWorkbook(f)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Failed to parse workbook", err)
	}

	accept, _ := strconv.ParseBool(c.FormValue("accept_duplicates"))

	report, err := h.svc.ImportRows(c.Request().Context(), rows, accept)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to import records", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Import complete", report)
}

// ExportHandler streams the full roster as an .xlsx download.
func (h *TransferHandler) ExportHandler(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to list records", err)
	}

	data, err := h.exporter.ToBytes(records)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	c.Response().Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", `attachment; filename="gip_roster.xlsx"`)
	c.Response().Header().Set("Content-Length", strconv.Itoa(len(data)))

	_, err = c.Response().Write(data)
	return err
}
