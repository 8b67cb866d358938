package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"volonterka-backend/models"
)

type User struct {
	BaseModel
	Email        string            `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string            `gorm:"type:varchar(255);not null"`
	Role         models.UserRole   `gorm:"type:varchar(20);default:'donor'"`
	Status       models.UserStatus `gorm:"type:varchar(20);default:'pending'"`
	FullName     string            `gorm:"type:varchar(255)"`
	Phone        string            `gorm:"type:varchar(20)"`
	ProofPath    string            `gorm:"type:varchar(512)"`
	Notes        string            `gorm:"type:text"`
	CreatedVia   string            `gorm:"type:varchar(50)"`
	ApprovedAt   *time.Time
	BannedAt     *time.Time
	LastLoginAt  *time.Time
}

func (User) TableName() string {
	return "users"
}

type UserAuditRecord struct {
	BaseModel
	UserID      string           `gorm:"type:varchar(36);index;not null"`
	Action      string           `gorm:"type:varchar(100);not null"`
	Details     UserAuditDetails `gorm:"type:jsonb"`
	PerformedBy *string          `gorm:"type:varchar(36)"`
}

func (UserAuditRecord) TableName() string {
	return "user_audit_log"
}

type UserAuditDetails map[string]interface{}

func (d UserAuditDetails) Value() (driver.Value, error) {
	valueString, err := json.Marshal(d)
	return string(valueString), err
}

func (d *UserAuditDetails) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &d); err != nil {
		return err
	}
	return nil
}
