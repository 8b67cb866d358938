package fundraisingapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "volonterka-backend/models/db"
)

type GoalRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TargetAmount int64  `json:"target_amount"`
	Status       string `json:"status"`
}

func (r GoalRequest) Validate() error {
	if r.Title == "" {
		return errors.New("назву цілі не вказано")
	}
	if r.TargetAmount < 1 {
		return errors.New("мета збору має бути додатною")
	}
	switch dbmodels.GoalStatus(r.Status) {
	case dbmodels.GoalStatusActive, dbmodels.GoalStatusPaused, dbmodels.GoalStatusDone:
		return nil
	}
	return errors.New("некоректний статус цілі")
}

type BankAccountRequest struct {
	Label     string `json:"label"`
	Recipient string `json:"recipient"`
	Iban      string `json:"iban"`
	Edrpou    string `json:"edrpou"`
	Purpose   string `json:"purpose"`
}

func (r BankAccountRequest) Validate() error {
	if r.Label == "" || r.Recipient == "" {
		return errors.New("назву та отримувача не вказано")
	}
	if len(r.Iban) < 15 || len(r.Iban) > 34 {
		return errors.New("некоректний IBAN")
	}
	return nil
}

// Totals - зведені показники фонду.
type Totals struct {
	TotalRaised    int64 `json:"totalRaised"`
	TotalWithdrawn int64 `json:"totalWithdrawn"`
	Balance        int64 `json:"balance"`
}

type GoalView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TargetAmount int64     `json:"target_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func GoalConvert(rec dbmodels.FundraisingGoal) GoalView {
	return GoalView{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		TargetAmount: rec.TargetAmount,
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type BankAccountView struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Recipient string    `json:"recipient"`
	Iban      string    `json:"iban"`
	Edrpou    string    `json:"edrpou,omitempty"`
	Purpose   string    `json:"purpose,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func BankAccountConvert(rec dbmodels.BankAccount) BankAccountView {
	return BankAccountView{
		ID:        rec.ID,
		Label:     rec.Label,
		Recipient: rec.Recipient,
		Iban:      rec.Iban,
		Edrpou:    rec.Edrpou,
		Purpose:   rec.Purpose,
		UpdatedAt: rec.UpdatedAt,
	}
}
