package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type PendingStatus string

const (
	PendingStatusPending  PendingStatus = "pending"
	PendingStatusApproved PendingStatus = "approved"
	PendingStatusRejected PendingStatus = "rejected"
)

type PendingEntityType string

const (
	PendingEntityDonation  PendingEntityType = "donation"
	PendingEntityVolunteer PendingEntityType = "volunteer"
)

type PendingActionKind string

const (
	PendingActionCreate PendingActionKind = "create"
)

// PendingAction - запис журналу модерації. Рядок ніколи не видаляється,
// при поверненні на розгляд скидається лише стан обробки.
type PendingAction struct {
	BaseModel
	UserID            *string           `gorm:"type:varchar(36);index"`
	EntityType        PendingEntityType `gorm:"type:varchar(50);not null"`
	Action            PendingActionKind `gorm:"type:varchar(50);not null;default:'create'"`
	Status            PendingStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Payload           PendingPayload    `gorm:"type:jsonb"`
	Source            string            `gorm:"type:varchar(100)"`
	ProcessedEntityID *string           `gorm:"type:varchar(36)"`
	ResolutionNotes   *string           `gorm:"type:text"`
	ProcessedAt       *time.Time
	ProcessedBy       *string `gorm:"type:varchar(36)"`
}

func (PendingAction) TableName() string {
	return "pending_actions"
}

// PendingPayload - збережені поля запропонованої сутності.
// Заповнюється рівно одне поле, відповідне EntityType.
type PendingPayload struct {
	Donation  *DonationPayload  `json:"donation,omitempty"`
	Volunteer *VolunteerPayload `json:"volunteer,omitempty"`
}

type DonationPayload struct {
	DonorName string `json:"donor_name" validate:"required,min=2"`
	Amount    int64  `json:"amount" validate:"required,min=10,max=10000000"`
	Currency  string `json:"currency" validate:"omitempty,len=3"`
	Message   string `json:"message" validate:"omitempty,max=300"`
}

type VolunteerPayload struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Phone    string `json:"phone" validate:"required,phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Region   string `json:"region" validate:"omitempty,max=255"`
	Skills   string `json:"skills" validate:"omitempty,max=200"`
	Comment  string `json:"comment" validate:"omitempty,max=500"`
}

func (p PendingPayload) EntityType() (PendingEntityType, bool) {
	switch {
	case p.Donation != nil:
		return PendingEntityDonation, true
	case p.Volunteer != nil:
		return PendingEntityVolunteer, true
	}
	return "", false
}

func (p PendingPayload) Value() (driver.Value, error) {
	valueString, err := json.Marshal(p)
	return string(valueString), err
}

func (p *PendingPayload) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &p); err != nil {
		return err
	}
	return nil
}

// PendingActionView - рядок журналу з іменами подавача та модератора для адмінки.
type PendingActionView struct {
	PendingAction
	SubmittedByName  string `gorm:"column:submitted_by_name"`
	SubmittedByEmail string `gorm:"column:submitted_by_email"`
	ProcessedByName  string `gorm:"column:processed_by_name"`
	ProcessedByEmail string `gorm:"column:processed_by_email"`
}
