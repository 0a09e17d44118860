// associations.go
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

// AssociationHandler handles HOA and board member routes
type AssociationHandler struct {
	DB *gorm.DB
}

// GetAssociations handles GET /api/associations
// @Summary List associations
// @Description Get all HOAs with their board members
// @Tags Associations
// @Accept json
// @Produce json
// @Success 200 {array} models.Association
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /associations [get]
func (h *AssociationHandler) GetAssociations(c *fiber.Ctx) error {
	associations, err := services.GetAssociations(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "association")
	}
	return c.Status(fiber.StatusOK).JSON(associations)
}

// GetAssociation handles GET /api/associations/:id
// @Summary Get an association
// @Description Get one HOA with its board members
// @Tags Associations
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Success 200 {object} models.Association
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /associations/{id} [get]
func (h *AssociationHandler) GetAssociation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	association, err := services.GetAssociation(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "association")
	}
	return c.Status(fiber.StatusOK).JSON(association)
}

// CreateAssociation handles POST /api/associations
// @Summary Create an association
// @Description Create an HOA on an existing property
// @Tags Associations
// @Accept json
// @Produce json
// @Param body body services.AssociationInput true "Association to create"
// @Success 201 {object} models.Association
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /associations [post]
func (h *AssociationHandler) CreateAssociation(c *fiber.Ctx) error {
	var input services.AssociationInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	association, err := services.CreateAssociation(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "association")
	}
	return c.Status(fiber.StatusCreated).JSON(association)
}

// UpdateAssociation handles PUT /api/associations/:id
// @Summary Update an association
// @Description Update HOA fields
// @Tags Associations
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Param body body services.UpdateAssociationInput true "Fields to update"
// @Success 200 {object} models.Association
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /associations/{id} [put]
func (h *AssociationHandler) UpdateAssociation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateAssociationInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	association, err := services.UpdateAssociation(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "association")
	}
	return c.Status(fiber.StatusOK).JSON(association)
}

// DeleteAssociation handles DELETE /api/associations/:id
// @Summary Delete an association
// @Description Delete an HOA and its board members
// @Tags Associations
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /associations/{id} [delete]
func (h *AssociationHandler) DeleteAssociation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteAssociation(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "association")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoardMembers handles GET /api/board-members
// @Summary List board members
// @Description Get all board members across associations
// @Tags Associations
// @Accept json
// @Produce json
// @Success 200 {array} models.BoardMember
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /board-members [get]
func (h *AssociationHandler) GetBoardMembers(c *fiber.Ctx) error {
	members, err := services.GetBoardMembers(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "board member")
	}
	return c.Status(fiber.StatusOK).JSON(members)
}

// GetBoardMember handles GET /api/board-members/:id
// @Summary Get a board member
// @Description Get one board member
// @Tags Associations
// @Accept json
// @Produce json
// @Param id path int true "Board member ID"
// @Success 200 {object} models.BoardMember
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /board-members/{id} [get]
func (h *AssociationHandler) GetBoardMember(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	member, err := services.GetBoardMember(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "board member")
	}
	return c.Status(fiber.StatusOK).JSON(member)
}

// CreateBoardMember handles POST /api/board-members
// @Summary Create a board member
// @Description Create a board member on an existing association
// @Tags Associations
// @Accept json
// @Produce json
// @Param body body services.BoardMemberInput true "Board member to create"
// @Success 201 {object} models.BoardMember
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /board-members [post]
func (h *AssociationHandler) CreateBoardMember(c *fiber.Ctx) error {
	var input services.BoardMemberInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	member, err := services.CreateBoardMember(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "board member")
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateBoardMember handles PUT /api/board-members/:id
// @Summary Update a board member
// @Description Update board member fields
// @Tags Associations
// @Accept json
// @Produce json
// @Param id path int true "Board member ID"
// @Param body body services.UpdateBoardMemberInput true "Fields to update"
// @Success 200 {object} models.BoardMember
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /board-members/{id} [put]
func (h *AssociationHandler) UpdateBoardMember(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateBoardMemberInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	member, err := services.UpdateBoardMember(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "board member")
	}
	return c.Status(fiber.StatusOK).JSON(member)
}

// DeleteBoardMember handles DELETE /api/board-members/:id
// @Summary Delete a board member
// @Description Delete one board member
// @Tags Associations
// @Accept json
// @Produce json
// @Param id path int true "Board member ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /board-members/{id} [delete]
func (h *AssociationHandler) DeleteBoardMember(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteBoardMember(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "board member")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
