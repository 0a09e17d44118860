// payments.go
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

// PaymentHandler handles rent payment routes
type PaymentHandler struct {
	DB *gorm.DB
}

// GetPayments handles GET /api/payments
// @Summary List payments
// @Description Get all rent payments, newest first
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {array} models.Payment
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /payments [get]
func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	payments, err := services.GetPayments(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "payment")
	}
	return c.Status(fiber.StatusOK).JSON(payments)
}

// GetPayment handles GET /api/payments/:id
// @Summary Get a payment
// @Description Get one rent payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	payment, err := services.GetPayment(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "payment")
	}
	return c.Status(fiber.StatusOK).JSON(payment)
}

// CreatePayment handles POST /api/payments
// @Summary Create a payment
// @Description Record a payment for an existing tenant
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body services.PaymentInput true "Payment to record"
// @Success 201 {object} models.Payment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var input services.PaymentInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	payment, err := services.CreatePayment(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "payment")
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// UpdatePayment handles PUT /api/payments/:id
// @Summary Update a payment
// @Description Update payment fields; the receipt reference is immutable
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param body body services.UpdatePaymentInput true "Fields to update"
// @Success 200 {object} models.Payment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdatePaymentInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	payment, err := services.UpdatePayment(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "payment")
	}
	return c.Status(fiber.StatusOK).JSON(payment)
}

// DeletePayment handles DELETE /api/payments/:id
// @Summary Delete a payment
// @Description Delete one payment record
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeletePayment(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "payment")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
