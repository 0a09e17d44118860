package models

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON wraps gorm.io/datatypes.JSON so the column type can vary per dialect.
// SubscriptionPlan.Features stores its feature document through this type.
type JSON struct {
	datatypes.JSON
}

// Value implements driver.Valuer through the embedded JSON
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan implements sql.Scanner through the embedded JSON
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType picks the storage type per database driver.
// SQL Server has no native json type, so it falls back to NVARCHAR(MAX).
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql", "sqlite":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	}
	return "TEXT"
}
