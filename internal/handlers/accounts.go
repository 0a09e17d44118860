// accounts.go
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

// AccountHandler handles ledger account and account type routes
type AccountHandler struct {
	DB *gorm.DB
}

// GetAccountTypes handles GET /api/account-types
// @Summary List account types
// @Description Get all ledger account types
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {array} models.AccountType
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account-types [get]
func (h *AccountHandler) GetAccountTypes(c *fiber.Ctx) error {
	accountTypes, err := services.GetAccountTypes(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account type")
	}
	return c.Status(fiber.StatusOK).JSON(accountTypes)
}

// GetAccountType handles GET /api/account-types/:id
// @Summary Get an account type
// @Description Get one ledger account type
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account type ID"
// @Success 200 {object} models.AccountType
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account-types/{id} [get]
func (h *AccountHandler) GetAccountType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	accountType, err := services.GetAccountType(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account type")
	}
	return c.Status(fiber.StatusOK).JSON(accountType)
}

// CreateAccountType handles POST /api/account-types
// @Summary Create an account type
// @Description Create a ledger account type
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body services.AccountTypeInput true "Account type to create"
// @Success 201 {object} models.AccountType
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account-types [post]
func (h *AccountHandler) CreateAccountType(c *fiber.Ctx) error {
	var input services.AccountTypeInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	accountType, err := services.CreateAccountType(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account type")
	}
	return c.Status(fiber.StatusCreated).JSON(accountType)
}

// UpdateAccountType handles PUT /api/account-types/:id
// @Summary Update an account type
// @Description Update account type fields
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account type ID"
// @Param body body services.UpdateAccountTypeInput true "Fields to update"
// @Success 200 {object} models.AccountType
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account-types/{id} [put]
func (h *AccountHandler) UpdateAccountType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateAccountTypeInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	accountType, err := services.UpdateAccountType(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account type")
	}
	return c.Status(fiber.StatusOK).JSON(accountType)
}

// DeleteAccountType handles DELETE /api/account-types/:id
// @Summary Delete an account type
// @Description Delete an account type that no account references
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account type ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account-types/{id} [delete]
func (h *AccountHandler) DeleteAccountType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteAccountType(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "account type")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAccounts handles GET /api/accounts
// @Summary List accounts
// @Description Get all ledger accounts with their types
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {array} models.Account
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /accounts [get]
func (h *AccountHandler) GetAccounts(c *fiber.Ctx) error {
	accounts, err := services.GetAccounts(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account")
	}
	return c.Status(fiber.StatusOK).JSON(accounts)
}

// GetAccount handles GET /api/accounts/:id
// @Summary Get an account
// @Description Get one ledger account with its type
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} models.Account
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	account, err := services.GetAccount(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account")
	}
	return c.Status(fiber.StatusOK).JSON(account)
}

// CreateAccount handles POST /api/accounts
// @Summary Create an account
// @Description Create a ledger account of an existing account type
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body services.AccountInput true "Account to create"
// @Success 201 {object} models.Account
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var input services.AccountInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	account, err := services.CreateAccount(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account")
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// UpdateAccount handles PUT /api/accounts/:id
// @Summary Update an account
// @Description Update account fields
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param body body services.UpdateAccountInput true "Fields to update"
// @Success 200 {object} models.Account
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateAccountInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	account, err := services.UpdateAccount(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "account")
	}
	return c.Status(fiber.StatusOK).JSON(account)
}

// DeleteAccount handles DELETE /api/accounts/:id
// @Summary Delete an account
// @Description Delete an account and its transactions
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteAccount(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
