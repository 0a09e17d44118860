// units.go
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

// UnitHandler handles rental unit routes
type UnitHandler struct {
	DB *gorm.DB
}

// GetUnits handles GET /api/units
// @Summary List units
// @Description Get all units with tenants, photos, and maintenance tickets
// @Tags Units
// @Accept json
// @Produce json
// @Success 200 {array} models.Unit
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /units [get]
func (h *UnitHandler) GetUnits(c *fiber.Ctx) error {
	units, err := services.GetUnits(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "unit")
	}
	return c.Status(fiber.StatusOK).JSON(units)
}

// GetUnit handles GET /api/units/:id
// @Summary Get a unit
// @Description Get one unit with tenants, photos, and maintenance tickets
// @Tags Units
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} models.Unit
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /units/{id} [get]
func (h *UnitHandler) GetUnit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	unit, err := services.GetUnit(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "unit")
	}
	return c.Status(fiber.StatusOK).JSON(unit)
}

// CreateUnit handles POST /api/units
// @Summary Create a unit
// @Description Create a unit under an existing property address
// @Tags Units
// @Accept json
// @Produce json
// @Param body body services.UnitInput true "Unit to create"
// @Success 201 {object} models.Unit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *fiber.Ctx) error {
	var input services.UnitInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	unit, err := services.CreateUnit(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "unit")
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

// UpdateUnit handles PUT /api/units/:id
// @Summary Update a unit
// @Description Update unit fields
// @Tags Units
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Param body body services.UpdateUnitInput true "Fields to update"
// @Success 200 {object} models.Unit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /units/{id} [put]
func (h *UnitHandler) UpdateUnit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateUnitInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	unit, err := services.UpdateUnit(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "unit")
	}
	return c.Status(fiber.StatusOK).JSON(unit)
}

// DeleteUnit handles DELETE /api/units/:id
// @Summary Delete a unit
// @Description Delete a unit and its tenants, payments, photos, and tickets
// @Tags Units
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteUnit(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "unit")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
