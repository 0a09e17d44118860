// subscriptions.go
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

// SubscriptionHandler handles billing plan and subscription routes
type SubscriptionHandler struct {
	DB *gorm.DB
}

// GetSubscriptionPlans handles GET /api/subscription/plans
// @Summary List billing plans
// @Description Get all billing plans
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Success 200 {array} models.SubscriptionPlan
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscription/plans [get]
func (h *SubscriptionHandler) GetSubscriptionPlans(c *fiber.Ctx) error {
	plans, err := services.GetSubscriptionPlans(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "plan")
	}
	return c.Status(fiber.StatusOK).JSON(plans)
}

// GetSubscriptionPlan handles GET /api/subscription/plans/:id
// @Summary Get a billing plan
// @Description Get one billing plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} models.SubscriptionPlan
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscription/plans/{id} [get]
func (h *SubscriptionHandler) GetSubscriptionPlan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	plan, err := services.GetSubscriptionPlan(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "plan")
	}
	return c.Status(fiber.StatusOK).JSON(plan)
}

// CreateSubscriptionPlan handles POST /api/subscription/plans
// @Summary Create a billing plan
// @Description Create a billing plan with a feature document
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param body body services.SubscriptionPlanInput true "Plan to create"
// @Success 201 {object} models.SubscriptionPlan
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscription/plans [post]
func (h *SubscriptionHandler) CreateSubscriptionPlan(c *fiber.Ctx) error {
	var input services.SubscriptionPlanInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	plan, err := services.CreateSubscriptionPlan(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "plan")
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// UpdateSubscriptionPlan handles PUT /api/subscription/plans/:id
// @Summary Update a billing plan
// @Description Update plan fields
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param body body services.UpdateSubscriptionPlanInput true "Fields to update"
// @Success 200 {object} models.SubscriptionPlan
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscription/plans/{id} [put]
func (h *SubscriptionHandler) UpdateSubscriptionPlan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateSubscriptionPlanInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	plan, err := services.UpdateSubscriptionPlan(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "plan")
	}
	return c.Status(fiber.StatusOK).JSON(plan)
}

// DeleteSubscriptionPlan handles DELETE /api/subscription/plans/:id
// @Summary Delete a billing plan
// @Description Delete a plan that no subscription references
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscription/plans/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscriptionPlan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteSubscriptionPlan(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "plan")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSubscriptions handles GET /api/subscriptions
// @Summary List subscriptions
// @Description Get all subscriptions with their plans
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Success 200 {array} models.Subscription
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscriptions [get]
func (h *SubscriptionHandler) GetSubscriptions(c *fiber.Ctx) error {
	subscriptions, err := services.GetSubscriptions(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "subscription")
	}
	return c.Status(fiber.StatusOK).JSON(subscriptions)
}

// GetSubscription handles GET /api/subscriptions/:id
// @Summary Get a subscription
// @Description Get one subscription with its plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} models.Subscription
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	subscription, err := services.GetSubscription(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "subscription")
	}
	return c.Status(fiber.StatusOK).JSON(subscription)
}

// CreateSubscription handles POST /api/subscriptions
// @Summary Create a subscription
// @Description Enroll a user on an existing billing plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param body body services.SubscriptionInput true "Subscription to create"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	var input services.SubscriptionInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	subscription, err := services.CreateSubscription(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "subscription")
	}
	return c.Status(fiber.StatusCreated).JSON(subscription)
}

// UpdateSubscription handles PUT /api/subscriptions/:id
// @Summary Update a subscription
// @Description Update status or plan; cancelling stamps the cancellation time
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param body body services.UpdateSubscriptionInput true "Fields to update"
// @Success 200 {object} models.Subscription
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscriptions/{id} [put]
func (h *SubscriptionHandler) UpdateSubscription(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateSubscriptionInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	subscription, err := services.UpdateSubscription(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "subscription")
	}
	return c.Status(fiber.StatusOK).JSON(subscription)
}

// DeleteSubscription handles DELETE /api/subscriptions/:id
// @Summary Delete a subscription
// @Description Delete one subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteSubscription(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "subscription")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
