package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/domain/entity"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WorkdoneHandlerParams holds dependencies for WorkdoneHandler, injected by Fx.
type WorkdoneHandlerParams struct {
	fx.In

	WorkdoneUC usecase.WorkdoneUsecase
	Logger     *slog.Logger
}

// WorkdoneHandler serves the standalone work log
type WorkdoneHandler struct {
	workdoneUC usecase.WorkdoneUsecase
	logger     *slog.Logger
}

// NewWorkdoneHandler is the constructor for WorkdoneHandler
func NewWorkdoneHandler(params WorkdoneHandlerParams) *WorkdoneHandler {
	return &WorkdoneHandler{
		workdoneUC: params.WorkdoneUC,
		logger:     params.Logger,
	}
}

// AddWorkdoneRequest represents the request body for a standalone work log entry
type AddWorkdoneRequest struct {
	WorkDone string `json:"workDone" validate:"required"`
	Charge   string `json:"charge" validate:"required"`
	Month    string `json:"month" validate:"required"`
	Day      string `json:"day" validate:"required"`
	Year     string `json:"year" validate:"required"`
}

// EditWorkdoneRequest represents the fields to change on a standalone entry
type EditWorkdoneRequest struct {
	WorkDone *string `json:"workDone" validate:"omitempty,min=1"`
	Charge   *string `json:"charge" validate:"omitempty,min=1"`
	Month    *string `json:"month"`
	Day      *string `json:"day"`
	Year     *string `json:"year"`
}

// AddWorkdone handles entry creation
func (h *WorkdoneHandler) AddWorkdone(c echo.Context) error {
	var req AddWorkdoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workdone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	workdone, err := h.workdoneUC.CreateWorkdone(c.Request().Context(), &usecase.CreateWorkdoneInput{
		WorkDone: req.WorkDone,
		Charge:   req.Charge,
		Date:     entity.DateParts{Month: req.Month, Day: req.Day, Year: req.Year},
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, response.Envelope{Message: "Work Done added successfully!", Data: workdone})
}

// GetWorkdone returns every entry
func (h *WorkdoneHandler) GetWorkdone(c echo.Context) error {
	workdones, err := h.workdoneUC.ListWorkdones(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, workdones)
}

// EditWorkdone handles a partial update of an entry
func (h *WorkdoneHandler) EditWorkdone(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workdone ID")
	}

	var req EditWorkdoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workdone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	workdone, err := h.workdoneUC.UpdateWorkdone(c.Request().Context(), id, &usecase.UpdateWorkdoneInput{
		WorkDone: req.WorkDone,
		Charge:   req.Charge,
		Month:    req.Month,
		Day:      req.Day,
		Year:     req.Year,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Message: "Work Done updated successfully!", Data: workdone})
}

// DeleteWorkdone removes an entry
func (h *WorkdoneHandler) DeleteWorkdone(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workdone ID")
	}

	if err := h.workdoneUC.DeleteWorkdone(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Work Done deleted successfully!")
}

// PreviewWorkdone returns a single entry
func (h *WorkdoneHandler) PreviewWorkdone(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workdone ID")
	}

	workdone, err := h.workdoneUC.GetWorkdone(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, workdone)
}
