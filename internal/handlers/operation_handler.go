package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/authz"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/services"
)

type OperationHandler struct {
	operationService *services.OperationService
}

func NewOperationHandler(operationService *services.OperationService) *OperationHandler {
	return &OperationHandler{operationService: operationService}
}

// Create handles POST /operations.
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	callerID, err := authz.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateOperationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	op, err := h.operationService.Create(callerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Only operators can create operations",
			})
		case errors.Is(err, authz.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		case errors.Is(err, services.ErrNoOpenShift):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Open a shift before creating operations",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create operation",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(op)
}

// Pay handles PATCH /operations/:id/pay.
func (h *OperationHandler) Pay(c *fiber.Ctx) error {
	callerID, err := authz.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	opID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid operation ID",
		})
	}

	op, err := h.operationService.Pay(opID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Only operators and masters can accept payment",
			})
		case errors.Is(err, authz.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		case errors.Is(err, services.ErrNoOpenShift):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "No open shift",
			})
		case errors.Is(err, services.ErrOperationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Operation not found",
			})
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Operation is not pending",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to pay operation",
		})
	}

	return c.JSON(op)
}

// Cancel handles PATCH /operations/:id/cancel.
func (h *OperationHandler) Cancel(c *fiber.Ctx) error {
	callerID, err := authz.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	opID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid operation ID",
		})
	}

	var req dto.CancelOperationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	op, err := h.operationService.Cancel(opID, callerID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Only operators can cancel operations",
			})
		case errors.Is(err, authz.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		case errors.Is(err, services.ErrReasonRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Cancel reason is required",
			})
		case errors.Is(err, services.ErrNoOpenShift):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "No open shift",
			})
		case errors.Is(err, services.ErrOperationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Operation not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to cancel operation",
		})
	}

	return c.JSON(op)
}

// Delete handles DELETE /operations/:id.
func (h *OperationHandler) Delete(c *fiber.Ctx) error {
	opID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid operation ID",
		})
	}

	if err := h.operationService.Delete(opID); err != nil {
		if errors.Is(err, services.ErrOperationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Operation not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete operation",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Operation deleted"})
}

// List handles GET /operations?operator_id=.
func (h *OperationHandler) List(c *fiber.Ctx) error {
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

	ops, err := h.operationService.List(operatorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list operations",
		})
	}

	return c.JSON(ops)
}
