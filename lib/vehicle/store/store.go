package vehiclestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vehicle) (id string, err error)
	GetByID(id string) (*dbmodels.Vehicle, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() ([]dbmodels.Vehicle, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vehicle) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vehicle, error) {
	rec := dbmodels.Vehicle{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Vehicle{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Vehicle{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) List() ([]dbmodels.Vehicle, error) {
	list := []dbmodels.Vehicle{}
	err := i.db.
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
