package vehicle

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	vehiclestore "volonterka-backend/lib/vehicle/store"
	vehicleapimodels "volonterka-backend/models/api/vehicle"
	dbmodels "volonterka-backend/models/db"
)

var ErrVehicleNotFound = errors.New("автівку не знайдено")

type Provider interface {
	Create(req vehicleapimodels.VehicleRequest) (id string, err error)
	Update(id string, req vehicleapimodels.VehicleRequest) error
	Delete(id string) error
	List() ([]vehicleapimodels.VehicleView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: vehiclestore.NewInstance(db.DB),
	}
}

type impl struct {
	store vehiclestore.Provider
}

func (i impl) Create(req vehicleapimodels.VehicleRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.Vehicle{
		Name:        req.Name,
		Description: req.Description,
		Status:      dbmodels.VehicleStatus(req.Status),
		Category:    req.Category,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		log.WithError(err).Error("Помилка створення автівки")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, req vehicleapimodels.VehicleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrVehicleNotFound
	}
	updMap := map[string]interface{}{
		"Name":        req.Name,
		"Description": req.Description,
		"Status":      dbmodels.VehicleStatus(req.Status),
		"Category":    req.Category,
	}
	if req.ImagePath != "" {
		updMap["ImagePath"] = req.ImagePath
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrVehicleNotFound
	}
	return i.store.Delete(id)
}

func (i impl) List() ([]vehicleapimodels.VehicleView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("Помилка отримання автопарку")
		return nil, err
	}
	result := make([]vehicleapimodels.VehicleView, 0, len(list))
	for _, rec := range list {
		result = append(result, vehicleapimodels.VehicleConvert(rec))
	}
	return result, nil
}
