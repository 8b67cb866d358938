package reviewstore

import (
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DonorReview) (id string, err error)
	List() ([]dbmodels.DonorReview, error)
	ListPublic(limit int) ([]dbmodels.DonorReview, error)
	SetVisibility(id string, visible bool) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DonorReview) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.DonorReview, error) {
	list := []dbmodels.DonorReview{}
	err := i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPublic(limit int) ([]dbmodels.DonorReview, error) {
	list := []dbmodels.DonorReview{}
	err := i.db.
		Where("public = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetVisibility(id string, visible bool) error {
	return i.db.
		Model(&dbmodels.DonorReview{}).
		Where("id = ?", id).
		Update("public", visible).
		Error
}
