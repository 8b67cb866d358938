package export

import "github.com/pkg/errors"

var (
	ErrInvalidSelection = errors.New("не вибрано жодного відомого набору даних")
	ErrUnknownFormat    = errors.New("невідомий формат експорту")
)
