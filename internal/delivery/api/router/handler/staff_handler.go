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

// StaffHandlerParams holds dependencies for StaffHandler, injected by Fx.
type StaffHandlerParams struct {
	fx.In

	StaffUC usecase.StaffUsecase
	Logger  *slog.Logger
}

// StaffHandler holds dependencies for staff and work log handlers
type StaffHandler struct {
	staffUC usecase.StaffUsecase
	logger  *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{
		staffUC: params.StaffUC,
		logger:  params.Logger,
	}
}

// AddStaffRequest represents the request body for adding a staff member
type AddStaffRequest struct {
	StaffName   string `json:"staffName" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Position    string `json:"position"`
	Month       string `json:"month"`
	Day         string `json:"day"`
	Year        string `json:"year"`
}

// EditStaffRequest represents the request body for editing a staff member
type EditStaffRequest struct {
	StaffName   *string `json:"staffName" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Position    *string `json:"position"`
	Month       *string `json:"month"`
	Day         *string `json:"day"`
	Year        *string `json:"year"`
}

// AddWorkDoneRequest represents a new entry of a staff member's work log
type AddWorkDoneRequest struct {
	WorkDone string  `json:"workdone" validate:"required"`
	Charge   float64 `json:"charge" validate:"gte=0"`
	Month    string  `json:"month"`
	Day      string  `json:"day"`
	Year     string  `json:"year"`
}

// EditWorkDoneRequest represents the fields to change on a work log entry
type EditWorkDoneRequest struct {
	WorkDone *string  `json:"workdone" validate:"omitempty,min=1"`
	Charge   *float64 `json:"charge" validate:"omitempty,gte=0"`
	Month    *string  `json:"month"`
	Day      *string  `json:"day"`
	Year     *string  `json:"year"`
}

// AddStaff handles staff creation
func (h *StaffHandler) AddStaff(c echo.Context) error {
	var req AddStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	staff, err := h.staffUC.CreateStaff(c.Request().Context(), &usecase.CreateStaffInput{
		StaffName:   req.StaffName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
		Date:        entity.DateParts{Month: req.Month, Day: req.Day, Year: req.Year},
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, response.Envelope{Message: "Staff added successfully!", Data: staff})
}

// GetStaffs returns every staff member
func (h *StaffHandler) GetStaffs(c echo.Context) error {
	staffs, err := h.staffUC.ListStaffs(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, staffs)
}

// EditStaff handles a partial update of a staff member
func (h *StaffHandler) EditStaff(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff ID")
	}

	var req EditStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	staff, err := h.staffUC.UpdateStaff(c.Request().Context(), id, &usecase.UpdateStaffInput{
		StaffName:   req.StaffName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
		Month:       req.Month,
		Day:         req.Day,
		Year:        req.Year,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Message: "Staff updated successfully!", Data: staff})
}

// DeleteStaff removes a staff member together with their work log
func (h *StaffHandler) DeleteStaff(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff ID")
	}

	if err := h.staffUC.DeleteStaff(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Staff deleted successfully!")
}

// PreviewStaff returns a single staff member
func (h *StaffHandler) PreviewStaff(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff ID")
	}

	staff, err := h.staffUC.GetStaff(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, staff)
}

// AddWorkDone appends an entry to a staff member's work log
func (h *StaffHandler) AddWorkDone(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff ID")
	}

	var req AddWorkDoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work done input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	staff, err := h.staffUC.AddWorkDone(c.Request().Context(), id, &usecase.AddWorkDoneInput{
		WorkDone: req.WorkDone,
		Charge:   req.Charge,
		Date:     entity.DateParts{Month: req.Month, Day: req.Day, Year: req.Year},
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Message: "Work done added successfully!", Data: staff})
}

// EditWorkDone changes a single entry of a staff member's work log
func (h *StaffHandler) EditWorkDone(c echo.Context) error {
	staffID, workID, ok := parseWorkDoneIDs(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid IDs")
	}

	var req EditWorkDoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work done input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	staff, err := h.staffUC.EditWorkDone(c.Request().Context(), staffID, workID, entity.WorkDonePatch{
		WorkDone: req.WorkDone,
		Charge:   req.Charge,
		Month:    req.Month,
		Day:      req.Day,
		Year:     req.Year,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Message: "Work done entry updated successfully!", Data: staff})
}

// DeleteWorkDone cuts an entry out of a staff member's work log
func (h *StaffHandler) DeleteWorkDone(c echo.Context) error {
	return h.removeWorkDone(c, entity.RemoveBySplice)
}

// PullWorkDone filters every entry with the given id out of a staff member's work log
func (h *StaffHandler) PullWorkDone(c echo.Context) error {
	return h.removeWorkDone(c, entity.RemoveByPull)
}

func (h *StaffHandler) removeWorkDone(c echo.Context, strategy entity.RemovalStrategy) error {
	staffID, workID, ok := parseWorkDoneIDs(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid IDs")
	}

	staff, err := h.staffUC.DeleteWorkDone(c.Request().Context(), staffID, workID, strategy)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Message: "Work done entry deleted successfully", Data: staff})
}

func parseWorkDoneIDs(c echo.Context) (uuid.UUID, uuid.UUID, bool) {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}

	workID, err := uuid.Parse(c.Param("workId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}

	return staffID, workID, true
}
