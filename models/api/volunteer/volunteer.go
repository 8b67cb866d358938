package volunteerapimodels

import (
	"regexp"
	"time"

	"github.com/pkg/errors"

	dbmodels "volonterka-backend/models/db"
)

var phoneRe = regexp.MustCompile(`^\+?\d{10,15}$`)

type VolunteerRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Region   string `json:"region"`
	Skills   string `json:"skills"`
	Comment  string `json:"comment"`
}

func (r VolunteerRequest) Validate() error {
	if len([]rune(r.FullName)) < 3 {
		return errors.New("вкажіть ПІБ (мінімум 3 символи)")
	}
	if !phoneRe.MatchString(r.Phone) {
		return errors.New("вкажіть коректний номер телефону")
	}
	if len([]rune(r.Skills)) > 200 {
		return errors.New("опишіть навички коротше")
	}
	if len([]rune(r.Comment)) > 500 {
		return errors.New("коментар занадто довгий")
	}
	return nil
}

type VolunteerView struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Region    string    `json:"region"`
	Skills    string    `json:"skills"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func VolunteerConvert(rec dbmodels.Volunteer) VolunteerView {
	return VolunteerView{
		ID:        rec.ID,
		FullName:  rec.FullName,
		Phone:     rec.Phone,
		Email:     rec.Email,
		Region:    rec.Region,
		Skills:    rec.Skills,
		Comment:   rec.Comment,
		CreatedAt: rec.CreatedAt,
	}
}
