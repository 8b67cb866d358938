package userapimodels

import (
	"time"

	"github.com/pkg/errors"

	"volonterka-backend/models"
	dbmodels "volonterka-backend/models/db"
)

type UserView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	ProofPath   string     `json:"proof_path,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		Role:        string(rec.Role),
		Status:      string(rec.Status),
		FullName:    rec.FullName,
		Phone:       rec.Phone,
		ProofPath:   rec.ProofPath,
		Notes:       rec.Notes,
		ApprovedAt:  rec.ApprovedAt,
		LastLoginAt: rec.LastLoginAt,
		CreatedAt:   rec.CreatedAt,
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
	Role   string `json:"role"`
}

func (r StatusUpdateRequest) Validate() error {
	switch models.UserStatus(r.Status) {
	case models.UserStatusApproved, models.UserStatusRejected, models.UserStatusBanned, models.UserStatusPending:
	default:
		return errors.New("некоректний статус користувача")
	}
	if r.Role != "" && r.Role != string(models.UserRoleAdmin) && r.Role != string(models.UserRoleDonor) {
		return errors.New("некоректна роль користувача")
	}
	return nil
}
