// owners.go
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

// OwnerHandler handles property owner routes
type OwnerHandler struct {
	DB *gorm.DB
}

// GetOwners handles GET /api/owners
// @Summary List owners
// @Description Get all owners with their properties
// @Tags Owners
// @Accept json
// @Produce json
// @Success 200 {array} models.Owner
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /owners [get]
func (h *OwnerHandler) GetOwners(c *fiber.Ctx) error {
	owners, err := services.GetOwners(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "owner")
	}
	return c.Status(fiber.StatusOK).JSON(owners)
}

// GetOwner handles GET /api/owners/:id
// @Summary Get an owner
// @Description Get one owner with their properties
// @Tags Owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {object} models.Owner
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /owners/{id} [get]
func (h *OwnerHandler) GetOwner(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	owner, err := services.GetOwner(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "owner")
	}
	return c.Status(fiber.StatusOK).JSON(owner)
}

// CreateOwner handles POST /api/owners
// @Summary Create an owner
// @Description Create an owner contact record
// @Tags Owners
// @Accept json
// @Produce json
// @Param body body services.OwnerInput true "Owner to create"
// @Success 201 {object} models.Owner
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /owners [post]
func (h *OwnerHandler) CreateOwner(c *fiber.Ctx) error {
	var input services.OwnerInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	owner, err := services.CreateOwner(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "owner")
	}
	return c.Status(fiber.StatusCreated).JSON(owner)
}

// UpdateOwner handles PUT /api/owners/:id
// @Summary Update an owner
// @Description Update owner fields
// @Tags Owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Param body body services.UpdateOwnerInput true "Fields to update"
// @Success 200 {object} models.Owner
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /owners/{id} [put]
func (h *OwnerHandler) UpdateOwner(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateOwnerInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	owner, err := services.UpdateOwner(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "owner")
	}
	return c.Status(fiber.StatusOK).JSON(owner)
}

// DeleteOwner handles DELETE /api/owners/:id
// @Summary Delete an owner
// @Description Delete an owner; their properties are kept and detached
// @Tags Owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /owners/{id} [delete]
func (h *OwnerHandler) DeleteOwner(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteOwner(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "owner")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
