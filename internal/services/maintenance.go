package services

import (
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MaintenanceTicketInput is the create payload for a maintenance ticket.
type MaintenanceTicketInput struct {
	Title    string `json:"title" validate:"required"`
	Details  string `json:"details"`
	Status   string `json:"status" validate:"omitempty,oneof=open in_progress closed"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	UnitID   uint64 `json:"unit_id" validate:"required"`
}

// UpdateMaintenanceTicketInput is the update payload for a maintenance ticket.
type UpdateMaintenanceTicketInput struct {
	Title    *string `json:"title"`
	Details  *string `json:"details"`
	Status   *string `json:"status" validate:"omitempty,oneof=open in_progress closed"`
	Priority *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	UnitID   *uint64 `json:"unit_id"`
}

// GetMaintenanceTickets returns all maintenance tickets
func GetMaintenanceTickets(db *gorm.DB) ([]models.MaintenanceTicket, error) {
	var tickets []models.MaintenanceTicket
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetMaintenanceTicket returns one maintenance ticket by id
func GetMaintenanceTicket(db *gorm.DB, id uint64) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateMaintenanceTicket opens a ticket against an existing unit. New
// tickets default to open.
func CreateMaintenanceTicket(db *gorm.DB, input MaintenanceTicketInput) (*models.MaintenanceTicket, error) {
	status := input.Status
	if status == "" {
		status = "open"
	}

	ticket := models.MaintenanceTicket{
		Title:    input.Title,
		Details:  input.Details,
		Status:   status,
		Priority: input.Priority,
		UnitID:   input.UnitID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Unit{}, input.UnitID, "unit"); err != nil {
			return err
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

// UpdateMaintenanceTicket overwrites the supplied fields of one ticket
func UpdateMaintenanceTicket(db *gorm.DB, id uint64, input UpdateMaintenanceTicketInput) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ticket, id).Error; err != nil {
			return err
		}

		if input.Title != nil {
			ticket.Title = *input.Title
		}
		if input.Details != nil {
			ticket.Details = *input.Details
		}
		if input.Status != nil {
			ticket.Status = *input.Status
		}
		if input.Priority != nil {
			ticket.Priority = *input.Priority
		}
		if input.UnitID != nil {
			if err := ensureExists(tx, &models.Unit{}, *input.UnitID, "unit"); err != nil {
				return err
			}
			ticket.UnitID = *input.UnitID
		}

		return tx.Save(&ticket).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// DeleteMaintenanceTicket removes one ticket
func DeleteMaintenanceTicket(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var ticket models.MaintenanceTicket
		if err := tx.First(&ticket, id).Error; err != nil {
			return err
		}
		return tx.Delete(&ticket).Error
	})
}
