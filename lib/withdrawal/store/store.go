package withdrawalstore

import (
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Withdrawal) (id string, err error)
	List() ([]dbmodels.Withdrawal, error)
	ListRecent(limit int) ([]dbmodels.Withdrawal, error)
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

func (i impl) Create(rec dbmodels.Withdrawal) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.Withdrawal, error) {
	list := []dbmodels.Withdrawal{}
	err := i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRecent(limit int) ([]dbmodels.Withdrawal, error) {
	list := []dbmodels.Withdrawal{}
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
		Model(&dbmodels.Withdrawal{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).
		Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
