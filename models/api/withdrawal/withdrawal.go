package withdrawalapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "volonterka-backend/models/db"
)

type WithdrawalRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

func (r WithdrawalRequest) Validate() error {
	if r.Amount < 1 || r.Amount > 10000000 {
		return errors.New("сума має бути додатною")
	}
	if len([]rune(r.Description)) > 300 {
		return errors.New("опис занадто довгий")
	}
	return nil
}

type WithdrawalView struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func WithdrawalConvert(rec dbmodels.Withdrawal) WithdrawalView {
	return WithdrawalView{
		ID:          rec.ID,
		Amount:      rec.Amount,
		Description: rec.Description,
		CreatedBy:   rec.CreatedBy,
		CreatedAt:   rec.CreatedAt,
	}
}
