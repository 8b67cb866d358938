package vehicleapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "volonterka-backend/models/db"
)

type VehicleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	ImagePath   string `json:"image_path"`
}

func (r VehicleRequest) Validate() error {
	if r.Name == "" {
		return errors.New("назву не вказано")
	}
	switch dbmodels.VehicleStatus(r.Status) {
	case dbmodels.VehicleStatusInService, dbmodels.VehicleStatusRepair,
		dbmodels.VehicleStatusDelivered, dbmodels.VehicleStatusNeeded:
		return nil
	}
	return errors.New("некоректний статус автівки")
}

type VehicleView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func VehicleConvert(rec dbmodels.Vehicle) VehicleView {
	return VehicleView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Status:      string(rec.Status),
		Category:    rec.Category,
		ImagePath:   rec.ImagePath,
		CreatedAt:   rec.CreatedAt,
	}
}
