package dbmodels

import (
	"time"

	"volonterka-backend/models"
)

type VolunteerFeedback struct {
	BaseModel
	SenderName      string                `gorm:"type:varchar(255);not null"`
	Contact         string                `gorm:"type:varchar(120)"`
	Message         string                `gorm:"type:text;not null"`
	Channel         string                `gorm:"type:varchar(50)"`
	Status          models.FeedbackStatus `gorm:"type:varchar(20);default:'new'"`
	ResolutionNotes string                `gorm:"type:text"`
	HandledBy       *string               `gorm:"type:varchar(36)"`
	HandledAt       *time.Time
}

func (VolunteerFeedback) TableName() string {
	return "volunteer_feedback"
}
