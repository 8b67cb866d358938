package users

import "github.com/pkg/errors"

var (
	ErrBadCredentials = errors.New("невірний логін або пароль")
	ErrNotApproved    = errors.New("заявка ще не підтверджена адміністратором")
	ErrBanned         = errors.New("обліковий запис заблокований")
	ErrRestricted     = errors.New("обмежений доступ до системи")
	ErrForbidden      = errors.New("недостатньо прав для доступу")
	ErrEmailTaken     = errors.New("користувач із такою поштою вже існує")
	ErrUserNotFound   = errors.New("користувача не знайдено")
)
