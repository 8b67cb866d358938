package authapimodels

import "github.com/pkg/errors"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email не вказано")
	}
	if r.Password == "" {
		return errors.New("пароль не вказано")
	}
	return nil
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FullName  string `json:"full_name" validate:"required,min=3"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	ProofPath string `json:"proof_path" validate:"omitempty,max=512"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type JWTResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
