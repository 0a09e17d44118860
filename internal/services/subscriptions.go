package services

import (
	"fmt"
	"time"

	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SubscriptionPlanInput is the create payload for a billing plan.
type SubscriptionPlanInput struct {
	Name          string      `json:"name" validate:"required"`
	Price         float64     `json:"price"`
	BillingPeriod string      `json:"billing_period" validate:"omitempty,oneof=monthly yearly"`
	Features      models.JSON `json:"features"`
}

// UpdateSubscriptionPlanInput is the update payload for a billing plan.
type UpdateSubscriptionPlanInput struct {
	Name          *string      `json:"name"`
	Price         *float64     `json:"price"`
	BillingPeriod *string      `json:"billing_period" validate:"omitempty,oneof=monthly yearly"`
	Features      *models.JSON `json:"features"`
}

// SubscriptionInput is the create payload for a user subscription.
type SubscriptionInput struct {
	UserID    string    `json:"user_id" validate:"required,uuid4"`
	Status    string    `json:"status" validate:"omitempty,oneof=active past_due cancelled"`
	StartedAt time.Time `json:"started_at"`
	PlanID    uint64    `json:"plan_id" validate:"required"`
}

// UpdateSubscriptionInput is the update payload for a user subscription.
type UpdateSubscriptionInput struct {
	Status *string `json:"status" validate:"omitempty,oneof=active past_due cancelled"`
	PlanID *uint64 `json:"plan_id"`
}

// GetSubscriptionPlans returns all billing plans
func GetSubscriptionPlans(db *gorm.DB) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// GetSubscriptionPlan returns one billing plan by id
func GetSubscriptionPlan(db *gorm.DB, id uint64) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreateSubscriptionPlan inserts a billing plan
func CreateSubscriptionPlan(db *gorm.DB, input SubscriptionPlanInput) (*models.SubscriptionPlan, error) {
	plan := models.SubscriptionPlan{
		Name:          input.Name,
		Price:         input.Price,
		BillingPeriod: input.BillingPeriod,
		Features:      input.Features,
	}
	if plan.BillingPeriod == "" {
		plan.BillingPeriod = "monthly"
	}
	if err := db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateSubscriptionPlan overwrites the supplied fields of one billing plan
func UpdateSubscriptionPlan(db *gorm.DB, id uint64, input UpdateSubscriptionPlanInput) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&plan, id).Error; err != nil {
			return err
		}

		if input.Name != nil {
			plan.Name = *input.Name
		}
		if input.Price != nil {
			plan.Price = *input.Price
		}
		if input.BillingPeriod != nil {
			plan.BillingPeriod = *input.BillingPeriod
		}
		if input.Features != nil {
			plan.Features = *input.Features
		}

		return tx.Save(&plan).Error
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteSubscriptionPlan removes a billing plan that no subscription uses
func DeleteSubscriptionPlan(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var plan models.SubscriptionPlan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&plan, id).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Subscription{}).Where("plan_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("plan %d is referenced by %d subscriptions: %w", id, count, gorm.ErrForeignKeyViolated)
		}

		return tx.Delete(&plan).Error
	})
}

// GetSubscriptions returns all subscriptions with their plans
func GetSubscriptions(db *gorm.DB) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Plan").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// GetSubscription returns one subscription by id with its plan
func GetSubscription(db *gorm.DB, id uint64) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Plan").
		First(&subscription, id).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// CreateSubscription enrolls a user on an existing plan. New subscriptions
// default to active, started now.
func CreateSubscription(db *gorm.DB, input SubscriptionInput) (*models.Subscription, error) {
	startedAt := input.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}
	status := input.Status
	if status == "" {
		status = "active"
	}

	subscription := models.Subscription{
		UserID:    input.UserID,
		Status:    status,
		StartedAt: startedAt,
		PlanID:    input.PlanID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.SubscriptionPlan{}, input.PlanID, "plan"); err != nil {
			return err
		}
		return tx.Create(&subscription).Error
	})
	if err != nil {
		return nil, err
	}

	return GetSubscription(db, subscription.ID)
}

// UpdateSubscription overwrites the supplied fields of one subscription.
// Moving to cancelled stamps the cancellation time once.
func UpdateSubscription(db *gorm.DB, id uint64, input UpdateSubscriptionInput) (*models.Subscription, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var subscription models.Subscription
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&subscription, id).Error; err != nil {
			return err
		}

		if input.Status != nil {
			subscription.Status = *input.Status
			if subscription.Status == "cancelled" && subscription.CancelledAt == nil {
				now := time.Now().UTC()
				subscription.CancelledAt = &now
			}
		}
		if input.PlanID != nil {
			if err := ensureExists(tx, &models.SubscriptionPlan{}, *input.PlanID, "plan"); err != nil {
				return err
			}
			subscription.PlanID = *input.PlanID
		}

		return tx.Save(&subscription).Error
	})
	if err != nil {
		return nil, err
	}

	return GetSubscription(db, id)
}

// DeleteSubscription removes one subscription
func DeleteSubscription(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var subscription models.Subscription
		if err := tx.First(&subscription, id).Error; err != nil {
			return err
		}
		return tx.Delete(&subscription).Error
	})
}
