// photos.go
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

// PhotoHandler handles photo routes
type PhotoHandler struct {
	DB *gorm.DB
}

// GetPhotos handles GET /api/photos
// @Summary List photos
// @Description Get all photos across properties and units
// @Tags Photos
// @Accept json
// @Produce json
// @Success 200 {array} models.Photo
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos [get]
func (h *PhotoHandler) GetPhotos(c *fiber.Ctx) error {
	photos, err := services.GetPhotos(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "photo")
	}
	return c.Status(fiber.StatusOK).JSON(photos)
}

// GetPhoto handles GET /api/photos/:id
// @Summary Get a photo
// @Description Get one photo
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} models.Photo
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos/{id} [get]
func (h *PhotoHandler) GetPhoto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	photo, err := services.GetPhoto(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "photo")
	}
	return c.Status(fiber.StatusOK).JSON(photo)
}

// CreatePhoto handles POST /api/photos
// @Summary Create a photo
// @Description Create a photo anchored to an existing property or unit
// @Tags Photos
// @Accept json
// @Produce json
// @Param body body services.PhotoCreateInput true "Photo to create"
// @Success 201 {object} models.Photo
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos [post]
func (h *PhotoHandler) CreatePhoto(c *fiber.Ctx) error {
	var input services.PhotoCreateInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	photo, err := services.CreatePhoto(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "photo")
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

// UpdatePhoto handles PUT /api/photos/:id
// @Summary Update a photo
// @Description Update photo fields; promoting to primary demotes siblings on the same anchor
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Param body body services.UpdatePhotoInput true "Fields to update"
// @Success 200 {object} models.Photo
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos/{id} [put]
func (h *PhotoHandler) UpdatePhoto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdatePhotoInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	photo, err := services.UpdatePhoto(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "photo")
	}
	return c.Status(fiber.StatusOK).JSON(photo)
}

// DeletePhoto handles DELETE /api/photos/:id
// @Summary Delete a photo
// @Description Delete one photo
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeletePhoto(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "photo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
