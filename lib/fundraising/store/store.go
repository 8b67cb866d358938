package fundraisingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	ListGoals() ([]dbmodels.FundraisingGoal, error)
	GetActiveGoal() (*dbmodels.FundraisingGoal, error)
	CreateGoal(rec dbmodels.FundraisingGoal) (id string, err error)
	UpdateGoal(id string, updMap map[string]interface{}) error
	DeleteGoal(id string) error
	ListBankAccounts() ([]dbmodels.BankAccount, error)
	CreateBankAccount(rec dbmodels.BankAccount) (id string, err error)
	UpdateBankAccount(id string, updMap map[string]interface{}) error
	DeleteBankAccount(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListGoals() ([]dbmodels.FundraisingGoal, error) {
	list := []dbmodels.FundraisingGoal{}
	err := i.db.
		Order("updated_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetActiveGoal() (*dbmodels.FundraisingGoal, error) {
	rec := dbmodels.FundraisingGoal{}
	err := i.db.
		Where("status = ?", dbmodels.GoalStatusActive).
		Order("updated_at desc").
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

func (i impl) CreateGoal(rec dbmodels.FundraisingGoal) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateGoal(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.FundraisingGoal{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) DeleteGoal(id string) error {
	rec := dbmodels.FundraisingGoal{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) ListBankAccounts() ([]dbmodels.BankAccount, error) {
	list := []dbmodels.BankAccount{}
	err := i.db.
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateBankAccount(rec dbmodels.BankAccount) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateBankAccount(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.BankAccount{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) DeleteBankAccount(id string) error {
	rec := dbmodels.BankAccount{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}
