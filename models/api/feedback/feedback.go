package feedbackapimodels

import (
	"time"

	"github.com/pkg/errors"

	"volonterka-backend/models"
	apimodels "volonterka-backend/models/api"
	dbmodels "volonterka-backend/models/db"
)

type FeedbackRequest struct {
	SenderName string `json:"sender_name"`
	Contact    string `json:"contact"`
	Message    string `json:"message"`
	Channel    string `json:"channel"`
}

func (r FeedbackRequest) Validate() error {
	if len([]rune(r.SenderName)) < 3 {
		return errors.New("вкажіть ім'я або організацію")
	}
	if len([]rune(r.Contact)) > 120 {
		return errors.New("контакт занадто довгий")
	}
	length := len([]rune(r.Message))
	if length < 10 || length > 800 {
		return errors.New("повідомлення має містити від 10 до 800 символів")
	}
	if len([]rune(r.Channel)) > 50 {
		return errors.New("канал занадто довгий")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (r StatusUpdateRequest) Validate() error {
	if !models.FeedbackStatus(r.Status).Valid() {
		return errors.New("некоректний статус звернення")
	}
	return nil
}

type ListFilter struct {
	apimodels.Pagination
	Status string `json:"status"` // new/in_progress/resolved/archived або all
}

type FeedbackView struct {
	ID              string     `json:"id"`
	SenderName      string     `json:"sender_name"`
	Contact         string     `json:"contact,omitempty"`
	Message         string     `json:"message"`
	Channel         string     `json:"channel,omitempty"`
	Status          string     `json:"status"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	HandledBy       *string    `json:"handled_by,omitempty"`
	HandledAt       *time.Time `json:"handled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FeedbackConvert(rec dbmodels.VolunteerFeedback) FeedbackView {
	return FeedbackView{
		ID:              rec.ID,
		SenderName:      rec.SenderName,
		Contact:         rec.Contact,
		Message:         rec.Message,
		Channel:         rec.Channel,
		Status:          string(rec.Status),
		ResolutionNotes: rec.ResolutionNotes,
		HandledBy:       rec.HandledBy,
		HandledAt:       rec.HandledAt,
		CreatedAt:       rec.CreatedAt,
	}
}
