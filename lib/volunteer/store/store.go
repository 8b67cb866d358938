package volunteerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Volunteer) (id string, err error)
	GetByID(id string) (*dbmodels.Volunteer, error)
	Delete(id string) error
	List() ([]dbmodels.Volunteer, error)
	ListRecent(limit int) ([]dbmodels.Volunteer, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Volunteer) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Volunteer, error) {
	rec := dbmodels.Volunteer{}
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Volunteer{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) List() ([]dbmodels.Volunteer, error) {
	list := []dbmodels.Volunteer{}
	err := i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRecent(limit int) ([]dbmodels.Volunteer, error) {
	list := []dbmodels.Volunteer{}
	err := i.db.
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
