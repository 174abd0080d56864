package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pesocar/gip-registry/internal/domain"
	"github.com/pesocar/gip-registry/internal/service"
	"github.com/pesocar/gip-registry/internal/service/serviceutils"
)

// RecordHandler exposes roster CRUD and the derived views.
type RecordHandler struct {
	svc *service.RecordService
}

func NewRecordHandler(svc *service.RecordService) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// statusFor maps domain errors onto HTTP statuses. Anything unrecognized
// is a storage-side failure the client may retry.
func statusFor(err error) int {
	var ve *domain.ValidationError
	var ge *domain.GenerationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSearchDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *RecordHandler) CreateHandler(c echo.Context) error {
	var req domain.EmploymentRecord
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	rec, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to create record", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Record created successfully", rec)
}

func (h *RecordHandler) GetHandler(c echo.Context) error {
	rec, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to get record", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Record retrieved successfully", rec)
}

func (h *RecordHandler) UpdateHandler(c echo.Context) error {
	var req domain.EmploymentRecord
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	rec, err := h.svc.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to update record", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Record updated successfully", rec)
}

func (h *RecordHandler) DeleteHandler(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to delete record", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Record deleted successfully", nil)
}

func (h *RecordHandler) ListHandler(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to list records", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Records listed successfully", records)
}

// ExperienceHandler returns the person's other placements grouped by year,
// with the record itself excluded from its own history.
func (h *RecordHandler) ExperienceHandler(c echo.Context) error {
	groups, err := h.svc.Experience(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to aggregate experience", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Experience aggregated successfully", groups)
}

// FormHandler returns the flattened, display-formatted snapshot consumed
// by the contract form filler.
func (h *RecordHandler) FormHandler(c echo.Context) error {
	rec, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to get record", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Form snapshot built successfully", service.FormSnapshot(rec))
}

func (h *RecordHandler) SummaryHandler(c echo.Context) error {
	totals, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to summarize roster", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Roster summarized successfully", totals)
}

func (h *RecordHandler) SearchHandler(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Missing query parameter q", nil)
	}

	hits, err := h.svc.SearchByName(c.Request().Context(), q)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to search records", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Records searched successfully", hits)
}
