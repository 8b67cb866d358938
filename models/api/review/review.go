package reviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "volonterka-backend/models/db"
)

type ReviewRequest struct {
	AuthorName string `json:"author_name"`
	Rating     *int   `json:"rating"`
	Message    string `json:"message"`
}

func (r ReviewRequest) Validate() error {
	if len([]rune(r.AuthorName)) < 2 {
		return errors.New("вкажіть ім'я")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return errors.New("оцініть від 1 до 5")
	}
	length := len([]rune(r.Message))
	if length < 10 || length > 600 {
		return errors.New("відгук повинен містити від 10 до 600 символів")
	}
	return nil
}

type ReviewView struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     *int      `json:"rating,omitempty"`
	Message    string    `json:"message"`
	Public     bool      `json:"public"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewConvert(rec dbmodels.DonorReview) ReviewView {
	return ReviewView{
		ID:         rec.ID,
		AuthorName: rec.AuthorName,
		Rating:     rec.Rating,
		Message:    rec.Message,
		Public:     rec.Public,
		CreatedAt:  rec.CreatedAt,
	}
}

type VisibilityRequest struct {
	Public bool `json:"public"`
}
