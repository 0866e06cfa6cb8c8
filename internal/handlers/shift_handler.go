package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/authz"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/services"
)

type ShiftHandler struct {
	shiftService *services.ShiftService
}

func NewShiftHandler(shiftService *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Open handles POST /shifts/open.
func (h *ShiftHandler) Open(c *fiber.Ctx) error {
	callerID, err := authz.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	shift, err := h.shiftService.Open(callerID)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Only operators can open shifts",
			})
		case errors.Is(err, authz.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		case errors.Is(err, services.ErrShiftAlreadyOpen):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Shift is already open",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to open shift",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(shift)
}

// Current handles GET /shifts/current.
func (h *ShiftHandler) Current(c *fiber.Ctx) error {
	callerID, err := authz.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	shift, err := h.shiftService.Current(callerID)
	if err != nil {
		if errors.Is(err, services.ErrNoOpenShift) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No open shift",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch current shift",
		})
	}

	return c.JSON(shift)
}

// Close handles POST /shifts/close.
func (h *ShiftHandler) Close(c *fiber.Ctx) error {
	callerID, err := authz.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CloseShiftRequest
	if err := c.BodyParser(&req); err != nil || req.ShiftID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	shift, err := h.shiftService.Close(req.ShiftID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Only operators can close shifts",
			})
		case errors.Is(err, authz.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		case errors.Is(err, services.ErrShiftNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Shift not found or already closed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to close shift",
		})
	}

	return c.JSON(shift)
}

// Logs handles GET /shifts/logs?operator_id=.
func (h *ShiftHandler) Logs(c *fiber.Ctx) error {
	var operatorID *uuid.UUID
	if raw := c.Query("operator_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid operator_id",
			})
		}
		operatorID = &id
	}

	entries, err := h.shiftService.Logs(operatorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list shift logs",
		})
	}

	return c.JSON(entries)
}
