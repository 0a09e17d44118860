// tenants.go
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

// TenantHandler handles tenant routes
type TenantHandler struct {
	DB *gorm.DB
}

// GetTenants handles GET /api/tenants
// @Summary List tenants
// @Description Get all tenants with their payments
// @Tags Tenants
// @Accept json
// @Produce json
// @Success 200 {array} models.Tenant
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenants [get]
func (h *TenantHandler) GetTenants(c *fiber.Ctx) error {
	tenants, err := services.GetTenants(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "tenant")
	}
	return c.Status(fiber.StatusOK).JSON(tenants)
}

// GetTenant handles GET /api/tenants/:id
// @Summary Get a tenant
// @Description Get one tenant with their payments
// @Tags Tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} models.Tenant
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	tenant, err := services.GetTenant(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "tenant")
	}
	return c.Status(fiber.StatusOK).JSON(tenant)
}

// CreateTenant handles POST /api/tenants
// @Summary Create a tenant
// @Description Create a tenant on an existing unit
// @Tags Tenants
// @Accept json
// @Produce json
// @Param body body services.TenantInput true "Tenant to create"
// @Success 201 {object} models.Tenant
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *fiber.Ctx) error {
	var input services.TenantInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	tenant, err := services.CreateTenant(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "tenant")
	}
	return c.Status(fiber.StatusCreated).JSON(tenant)
}

// UpdateTenant handles PUT /api/tenants/:id
// @Summary Update a tenant
// @Description Update tenant fields
// @Tags Tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param body body services.UpdateTenantInput true "Fields to update"
// @Success 200 {object} models.Tenant
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateTenantInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	tenant, err := services.UpdateTenant(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "tenant")
	}
	return c.Status(fiber.StatusOK).JSON(tenant)
}

// DeleteTenant handles DELETE /api/tenants/:id
// @Summary Delete a tenant
// @Description Delete a tenant and their payments
// @Tags Tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteTenant(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "tenant")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
