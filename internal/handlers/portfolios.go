// portfolios.go
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

// PortfolioHandler handles portfolio and portfolio membership routes
type PortfolioHandler struct {
	DB *gorm.DB
}

// GetPortfolios handles GET /api/portfolios
// @Summary List portfolios
// @Description Get all portfolios with their member properties
// @Tags Portfolios
// @Accept json
// @Produce json
// @Success 200 {array} models.Portfolio
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /portfolios [get]
func (h *PortfolioHandler) GetPortfolios(c *fiber.Ctx) error {
	portfolios, err := services.GetPortfolios(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "portfolio")
	}
	return c.Status(fiber.StatusOK).JSON(portfolios)
}

// GetPortfolio handles GET /api/portfolios/:id
// @Summary Get a portfolio
// @Description Get one portfolio with its member properties
// @Tags Portfolios
// @Accept json
// @Produce json
// @Param id path int true "Portfolio ID"
// @Success 200 {object} models.Portfolio
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /portfolios/{id} [get]
func (h *PortfolioHandler) GetPortfolio(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	portfolio, err := services.GetPortfolio(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "portfolio")
	}
	return c.Status(fiber.StatusOK).JSON(portfolio)
}

// CreatePortfolio handles POST /api/portfolios
// @Summary Create a portfolio
// @Description Create a named grouping of properties for a user
// @Tags Portfolios
// @Accept json
// @Produce json
// @Param body body services.PortfolioInput true "Portfolio to create"
// @Success 201 {object} models.Portfolio
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /portfolios [post]
func (h *PortfolioHandler) CreatePortfolio(c *fiber.Ctx) error {
	var input services.PortfolioInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	portfolio, err := services.CreatePortfolio(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "portfolio")
	}
	return c.Status(fiber.StatusCreated).JSON(portfolio)
}

// UpdatePortfolio handles PUT /api/portfolios/:id
// @Summary Update a portfolio
// @Description Update portfolio fields
// @Tags Portfolios
// @Accept json
// @Produce json
// @Param id path int true "Portfolio ID"
// @Param body body services.UpdatePortfolioInput true "Fields to update"
// @Success 200 {object} models.Portfolio
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /portfolios/{id} [put]
func (h *PortfolioHandler) UpdatePortfolio(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdatePortfolioInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	portfolio, err := services.UpdatePortfolio(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "portfolio")
	}
	return c.Status(fiber.StatusOK).JSON(portfolio)
}

// DeletePortfolio handles DELETE /api/portfolios/:id
// @Summary Delete a portfolio
// @Description Delete a portfolio; its member properties are untouched
// @Tags Portfolios
// @Accept json
// @Produce json
// @Param id path int true "Portfolio ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /portfolios/{id} [delete]
func (h *PortfolioHandler) DeletePortfolio(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeletePortfolio(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "portfolio")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AttachProperty handles POST /api/portfolios/:id/properties/:propertyId
// @Summary Add a property to a portfolio
// @Description Attach an existing property; attaching a member again is a no-op
// @Tags Portfolios
// @Accept json
// @Produce json
// @Param id path int true "Portfolio ID"
// @Param propertyId path int true "Property ID"
// @Success 200 {object} models.Portfolio
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /portfolios/{id}/properties/{propertyId} [post]
func (h *PortfolioHandler) AttachProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}
	propertyID, err := parseID(c, "propertyId")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	portfolio, err := services.AttachPortfolioProperty(h.DB, id, propertyID)
	if err != nil {
		return utils.DataErrorResponse(c, err, "portfolio")
	}
	return c.Status(fiber.StatusOK).JSON(portfolio)
}

// DetachProperty handles DELETE /api/portfolios/:id/properties/:propertyId
// @Summary Remove a property from a portfolio
// @Description Detach a property; detaching a non-member is a no-op
// @Tags Portfolios
// @Accept json
// @Produce json
// @Param id path int true "Portfolio ID"
// @Param propertyId path int true "Property ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /portfolios/{id}/properties/{propertyId} [delete]
func (h *PortfolioHandler) DetachProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}
	propertyID, err := parseID(c, "propertyId")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DetachPortfolioProperty(h.DB, id, propertyID); err != nil {
		return utils.DataErrorResponse(c, err, "portfolio")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
