// properties.go
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

// PropertyHandler handles property and property address routes
type PropertyHandler struct {
	DB *gorm.DB
}

// GetProperties handles GET /api/properties
// @Summary List properties
// @Description Get all properties with owner, addresses, units, and photos
// @Tags Properties
// @Accept json
// @Produce json
// @Success 200 {array} models.Property
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [get]
func (h *PropertyHandler) GetProperties(c *fiber.Ctx) error {
	properties, err := services.GetProperties(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "property")
	}
	return c.Status(fiber.StatusOK).JSON(properties)
}

// GetProperty handles GET /api/properties/:id
// @Summary Get a property
// @Description Get one property with owner, addresses, units, and photos
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	property, err := services.GetProperty(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "property")
	}
	return c.Status(fiber.StatusOK).JSON(property)
}

// CreateProperty handles POST /api/properties
// @Summary Create a property
// @Description Create a property, optionally with nested addresses and photos
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body services.PropertyInput true "Property to create"
// @Success 201 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var input services.PropertyInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	property, err := services.CreateProperty(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "property")
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update a property
// @Description Update property fields; nested addresses and photos are reconciled when present
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param body body services.UpdatePropertyInput true "Fields to update"
// @Success 200 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdatePropertyInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	property, err := services.UpdateProperty(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "property")
	}
	return c.Status(fiber.StatusOK).JSON(property)
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete a property
// @Description Delete a property and everything under it
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteProperty(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "property")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPropertyAddresses handles GET /api/properties/:id/addresses
// @Summary List property addresses
// @Description Get the addresses of one property with their units
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} models.PropertyAddress
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id}/addresses [get]
func (h *PropertyHandler) GetPropertyAddresses(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	addresses, err := services.GetPropertyAddresses(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "property")
	}
	return c.Status(fiber.StatusOK).JSON(addresses)
}

// SetPropertyAddresses handles PUT /api/properties/:id/addresses
// @Summary Replace property addresses
// @Description Reconcile the property's addresses against the submitted list
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param body body []services.AddressInput true "Addresses to keep"
// @Success 200 {array} models.PropertyAddress
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id}/addresses [put]
func (h *PropertyHandler) SetPropertyAddresses(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var inputs []services.AddressInput
	if err := c.BodyParser(&inputs); err != nil {
		return utils.ErrorResponse(c, "invalid request body: "+err.Error(), fiber.StatusBadRequest)
	}
	for _, input := range inputs {
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
		}
	}

	addresses, err := services.SetPropertyAddresses(h.DB, id, inputs)
	if err != nil {
		return utils.DataErrorResponse(c, err, "property")
	}
	return c.Status(fiber.StatusOK).JSON(addresses)
}

// GetAddress handles GET /api/properties/addresses/:id
// @Summary Get an address
// @Description Get one property address with its units
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} models.PropertyAddress
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/addresses/{id} [get]
func (h *PropertyHandler) GetAddress(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	address, err := services.GetAddress(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "address")
	}
	return c.Status(fiber.StatusOK).JSON(address)
}

// UpdateAddress handles PUT /api/properties/addresses/:id
// @Summary Update an address
// @Description Update address fields; promoting to primary demotes the property's other addresses
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param body body services.UpdateAddressInput true "Fields to update"
// @Success 200 {object} models.PropertyAddress
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/addresses/{id} [put]
func (h *PropertyHandler) UpdateAddress(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateAddressInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	address, err := services.UpdateAddress(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "address")
	}
	return c.Status(fiber.StatusOK).JSON(address)
}

// DeleteAddress handles DELETE /api/properties/addresses/:id
// @Summary Delete an address
// @Description Delete an address and the units, tenants, and payments under it
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/addresses/{id} [delete]
func (h *PropertyHandler) DeleteAddress(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteAddress(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "address")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
