package pendingapimodels

import (
	"time"

	dbmodels "volonterka-backend/models/db"
)

type ActionView struct {
	ID                string                   `json:"id"`
	UserID            *string                  `json:"user_id,omitempty"`
	EntityType        string                   `json:"entity_type"`
	Action            string                   `json:"action"`
	Status            string                   `json:"status"`
	Payload           dbmodels.PendingPayload  `json:"payload"`
	Source            string                   `json:"source,omitempty"`
	ProcessedEntityID *string                  `json:"processed_entity_id,omitempty"`
	ResolutionNotes   *string                  `json:"resolution_notes,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	ProcessedAt       *time.Time               `json:"processed_at,omitempty"`
	ProcessedBy       *string                  `json:"processed_by,omitempty"`
	SubmittedByName   string                   `json:"submitted_by_name,omitempty"`
	SubmittedByEmail  string                   `json:"submitted_by_email,omitempty"`
	ProcessedByName   string                   `json:"processed_by_name,omitempty"`
	ProcessedByEmail  string                   `json:"processed_by_email,omitempty"`
}

func ActionConvert(rec dbmodels.PendingActionView) ActionView {
	return ActionView{
		ID:                rec.ID,
		UserID:            rec.UserID,
		EntityType:        string(rec.EntityType),
		Action:            string(rec.Action),
		Status:            string(rec.Status),
		Payload:           rec.Payload,
		Source:            rec.Source,
		ProcessedEntityID: rec.ProcessedEntityID,
		ResolutionNotes:   rec.ResolutionNotes,
		CreatedAt:         rec.CreatedAt,
		ProcessedAt:       rec.ProcessedAt,
		ProcessedBy:       rec.ProcessedBy,
		SubmittedByName:   rec.SubmittedByName,
		SubmittedByEmail:  rec.SubmittedByEmail,
		ProcessedByName:   rec.ProcessedByName,
		ProcessedByEmail:  rec.ProcessedByEmail,
	}
}

type RejectRequest struct {
	Notes string `json:"notes"`
}
