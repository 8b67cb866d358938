package pendingactions

import "errors"

var (
	ErrActionNotFound    = errors.New("заявку не знайдено")
	ErrAlreadyApproved   = errors.New("заявку вже підтверджено")
	ErrUnsupportedEntity = errors.New("невідомий тип заявки")
	ErrInvalidPayload    = errors.New("дані заявки не відповідають схемі")
)
