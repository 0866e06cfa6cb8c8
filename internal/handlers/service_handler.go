package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/services"
)

type ServiceHandler struct {
	catalog *services.CatalogService
}

func NewServiceHandler(catalog *services.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	svc, err := h.catalog.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(svc)
}

func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	svc, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch service",
		})
	}

	return c.JSON(svc)
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list services",
		})
	}

	return c.JSON(items)
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	svc, err := h.catalog.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update service",
		})
	}

	return c.JSON(svc)
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	if err := h.catalog.Delete(id); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete service",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Service deleted"})
}

// AssignMaster handles POST /services/:id/masters.
func (h *ServiceHandler) AssignMaster(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	var req dto.AssignMasterRequest
	if err := c.BodyParser(&req); err != nil || req.MasterID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	link, err := h.catalog.AssignMaster(serviceID, req.MasterID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Service not found",
			})
		case errors.Is(err, services.ErrMasterAlreadyAssigned):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Master already assigned to this service",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to assign master",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}

// UnassignMaster handles DELETE /services/:id/masters/:master_id.
func (h *ServiceHandler) UnassignMaster(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	masterID, err := uuid.Parse(c.Params("master_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid master ID",
		})
	}

	if err := h.catalog.UnassignMaster(serviceID, masterID); err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Master is not assigned to this service",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to unassign master",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Master unassigned"})
}

// Masters handles GET /services/:id/masters.
func (h *ServiceHandler) Masters(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	masters, err := h.catalog.MastersFor(serviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list masters",
		})
	}

	return c.JSON(masters)
}

// MasterServices handles GET /masters/:id/services.
func (h *ServiceHandler) MasterServices(c *fiber.Ctx) error {
	masterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid master ID",
		})
	}

	items, err := h.catalog.ServicesFor(masterID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list services",
		})
	}

	return c.JSON(items)
}
