// maintenance.go
//
// Property management service for small landlords, HOAs, and portfolio investors
// Copyright (c) 2026 Homevine Labs <dev@homevine.io> (https://www.homevine.io)
//
// This file is part of propman.
// propman is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propman is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propman.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/homevine/propman/internal/services"
	"github.com/homevine/propman/internal/utils"
	"gorm.io/gorm"
)

// MaintenanceHandler handles maintenance ticket routes
type MaintenanceHandler struct {
	DB *gorm.DB
}

// GetMaintenanceTickets handles GET /api/maintenance
// @Summary List maintenance tickets
// @Description Get all maintenance tickets
// @Tags Maintenance
// @Accept json
// @Produce json
// @Success 200 {array} models.MaintenanceTicket
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maintenance [get]
func (h *MaintenanceHandler) GetMaintenanceTickets(c *fiber.Ctx) error {
	tickets, err := services.GetMaintenanceTickets(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "maintenance ticket")
	}
	return c.Status(fiber.StatusOK).JSON(tickets)
}

// GetMaintenanceTicket handles GET /api/maintenance/:id
// @Summary Get a maintenance ticket
// @Description Get one maintenance ticket
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} models.MaintenanceTicket
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) GetMaintenanceTicket(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	ticket, err := services.GetMaintenanceTicket(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "maintenance ticket")
	}
	return c.Status(fiber.StatusOK).JSON(ticket)
}

// CreateMaintenanceTicket handles POST /api/maintenance
// @Summary Create a maintenance ticket
// @Description Open a ticket against an existing unit
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param body body services.MaintenanceTicketInput true "Ticket to open"
// @Success 201 {object} models.MaintenanceTicket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maintenance [post]
func (h *MaintenanceHandler) CreateMaintenanceTicket(c *fiber.Ctx) error {
	var input services.MaintenanceTicketInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	ticket, err := services.CreateMaintenanceTicket(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "maintenance ticket")
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// UpdateMaintenanceTicket handles PUT /api/maintenance/:id
// @Summary Update a maintenance ticket
// @Description Update ticket fields
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param body body services.UpdateMaintenanceTicketInput true "Fields to update"
// @Success 200 {object} models.MaintenanceTicket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maintenance/{id} [put]
func (h *MaintenanceHandler) UpdateMaintenanceTicket(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateMaintenanceTicketInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	ticket, err := services.UpdateMaintenanceTicket(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "maintenance ticket")
	}
	return c.Status(fiber.StatusOK).JSON(ticket)
}

// DeleteMaintenanceTicket handles DELETE /api/maintenance/:id
// @Summary Delete a maintenance ticket
// @Description Delete one maintenance ticket
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) DeleteMaintenanceTicket(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteMaintenanceTicket(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "maintenance ticket")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
