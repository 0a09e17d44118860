package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ensureExists verifies a referenced parent row before a dependent write.
// Reporting the miss as a foreign key violation keeps the status mapping
// identical across dialects, including ones that do not enforce the
// constraint themselves.
func ensureExists(tx *gorm.DB, model interface{}, id uint64, entity string) error {
	var count int64
	if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
		Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("referenced %s %d does not exist: %w", entity, id, gorm.ErrForeignKeyViolated)
	}
	return nil
}
