package donationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Donation) (id string, err error)
	GetByID(id string) (*dbmodels.Donation, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() ([]dbmodels.Donation, error)
	ListPublic(limit int) ([]dbmodels.Donation, error)
	ListRecent(limit int) ([]dbmodels.Donation, error)
	SumAmount() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Donation) (id string, err error) {
	if rec.Currency == "" {
		rec.Currency = "UAH"
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Donation, error) {
	rec := dbmodels.Donation{}
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
		Model(&dbmodels.Donation{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Donation{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) List() ([]dbmodels.Donation, error) {
	list := []dbmodels.Donation{}
	err := i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPublic(limit int) ([]dbmodels.Donation, error) {
	list := []dbmodels.Donation{}
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

func (i impl) ListRecent(limit int) ([]dbmodels.Donation, error) {
	list := []dbmodels.Donation{}
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

func (i impl) SumAmount() (int64, error) {
	var total int64
	err := i.db.
		Model(&dbmodels.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).
		Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
