package donationapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "volonterka-backend/models/db"
)

type DonationRequest struct {
	DonorName string `json:"donor_name"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Message   string `json:"message"`
	Public    bool   `json:"public"`
}

func (r DonationRequest) Validate() error {
	if len([]rune(r.DonorName)) < 2 {
		return errors.New("вкажіть ім'я (мінімум 2 символи)")
	}
	if r.Amount < 10 || r.Amount > 10000000 {
		return errors.New("сума має бути від 10 до 10 000 000 грн")
	}
	if len([]rune(r.Message)) > 300 {
		return errors.New("повідомлення занадто довге")
	}
	return nil
}

type DonationView struct {
	ID        string    `json:"id"`
	DonorName string    `json:"donor_name"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Message   string    `json:"message"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
}

func DonationConvert(rec dbmodels.Donation) DonationView {
	return DonationView{
		ID:        rec.ID,
		DonorName: rec.DonorName,
		Amount:    rec.Amount,
		Currency:  rec.Currency,
		Message:   rec.Message,
		Public:    rec.Public,
		CreatedAt: rec.CreatedAt,
	}
}

// PublicDonationView - скорочена версія для публічної сторінки, без ідентифікаторів.
type PublicDonationView struct {
	DonorName string    `json:"donor_name"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func PublicDonationConvert(rec dbmodels.Donation) PublicDonationView {
	return PublicDonationView{
		DonorName: rec.DonorName,
		Amount:    rec.Amount,
		Currency:  rec.Currency,
		Message:   rec.Message,
		CreatedAt: rec.CreatedAt,
	}
}

type VisibilityRequest struct {
	Public bool `json:"public"`
}
