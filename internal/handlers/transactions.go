// transactions.go
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

// TransactionHandler handles ledger transaction and transaction type routes
type TransactionHandler struct {
	DB *gorm.DB
}

// GetTransactionTypes handles GET /api/transaction-types
// @Summary List transaction types
// @Description Get all ledger transaction types
// @Tags Transactions
// @Accept json
// @Produce json
// @Success 200 {array} models.TransactionType
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transaction-types [get]
func (h *TransactionHandler) GetTransactionTypes(c *fiber.Ctx) error {
	transactionTypes, err := services.GetTransactionTypes(h.DB)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction type")
	}
	return c.Status(fiber.StatusOK).JSON(transactionTypes)
}

// GetTransactionType handles GET /api/transaction-types/:id
// @Summary Get a transaction type
// @Description Get one ledger transaction type
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction type ID"
// @Success 200 {object} models.TransactionType
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transaction-types/{id} [get]
func (h *TransactionHandler) GetTransactionType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	transactionType, err := services.GetTransactionType(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction type")
	}
	return c.Status(fiber.StatusOK).JSON(transactionType)
}

// CreateTransactionType handles POST /api/transaction-types
// @Summary Create a transaction type
// @Description Create a ledger transaction type
// @Tags Transactions
// @Accept json
// @Produce json
// @Param body body services.TransactionTypeInput true "Transaction type to create"
// @Success 201 {object} models.TransactionType
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transaction-types [post]
func (h *TransactionHandler) CreateTransactionType(c *fiber.Ctx) error {
	var input services.TransactionTypeInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	transactionType, err := services.CreateTransactionType(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction type")
	}
	return c.Status(fiber.StatusCreated).JSON(transactionType)
}

// UpdateTransactionType handles PUT /api/transaction-types/:id
// @Summary Update a transaction type
// @Description Update transaction type fields
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction type ID"
// @Param body body services.UpdateTransactionTypeInput true "Fields to update"
// @Success 200 {object} models.TransactionType
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transaction-types/{id} [put]
func (h *TransactionHandler) UpdateTransactionType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateTransactionTypeInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	transactionType, err := services.UpdateTransactionType(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction type")
	}
	return c.Status(fiber.StatusOK).JSON(transactionType)
}

// DeleteTransactionType handles DELETE /api/transaction-types/:id
// @Summary Delete a transaction type
// @Description Delete a transaction type; its transactions keep their rows untyped
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction type ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transaction-types/{id} [delete]
func (h *TransactionHandler) DeleteTransactionType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteTransactionType(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "transaction type")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetTransactions handles GET /api/transactions?account_id=...
// @Summary List transactions
// @Description Get ledger transactions newest first, optionally filtered by account
// @Tags Transactions
// @Accept json
// @Produce json
// @Param account_id query int false "Restrict to one account"
// @Success 200 {array} models.Transaction
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	accountID := uint64(c.QueryInt("account_id", 0))

	transactions, err := services.GetTransactions(h.DB, accountID)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction")
	}
	return c.Status(fiber.StatusOK).JSON(transactions)
}

// GetTransaction handles GET /api/transactions/:id
// @Summary Get a transaction
// @Description Get one ledger transaction with its account and type
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	transaction, err := services.GetTransaction(h.DB, id)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction")
	}
	return c.Status(fiber.StatusOK).JSON(transaction)
}

// CreateTransaction handles POST /api/transactions
// @Summary Create a transaction
// @Description Record a ledger transaction against an existing account and property
// @Tags Transactions
// @Accept json
// @Produce json
// @Param body body services.TransactionInput true "Transaction to create"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var input services.TransactionInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	transaction, err := services.CreateTransaction(h.DB, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction")
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

// UpdateTransaction handles PUT /api/transactions/:id
// @Summary Update a transaction
// @Description Update transaction fields; the reference is immutable
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param body body services.UpdateTransactionInput true "Fields to update"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	var input services.UpdateTransactionInput
	if err := parseBody(c, &input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	transaction, err := services.UpdateTransaction(h.DB, id, input)
	if err != nil {
		return utils.DataErrorResponse(c, err, "transaction")
	}
	return c.Status(fiber.StatusOK).JSON(transaction)
}

// DeleteTransaction handles DELETE /api/transactions/:id
// @Summary Delete a transaction
// @Description Delete one ledger transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := services.DeleteTransaction(h.DB, id); err != nil {
		return utils.DataErrorResponse(c, err, "transaction")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
