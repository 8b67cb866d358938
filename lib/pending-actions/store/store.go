package pendingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PendingAction) (id string, err error)
	GetByID(id string) (*dbmodels.PendingActionView, error)
	GetForUpdate(tx *gorm.DB, id string) (*dbmodels.PendingAction, error)
	List() ([]dbmodels.PendingActionView, error)
	CountByStatus(status dbmodels.PendingStatus) (int64, error)
	Update(tx *gorm.DB, id string, updMap map[string]interface{}) error
	Transaction(fn func(tx *gorm.DB) error) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PendingAction) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

const viewSelect = `pending_actions.*,
	submitter.full_name AS submitted_by_name, submitter.email AS submitted_by_email,
	processor.full_name AS processed_by_name, processor.email AS processed_by_email`

func (i impl) GetByID(id string) (*dbmodels.PendingActionView, error) {
	rec := dbmodels.PendingActionView{}
	err := i.db.
		Model(&dbmodels.PendingAction{}).
		Select(viewSelect).
		Joins("LEFT JOIN users submitter ON submitter.id = pending_actions.user_id").
		Joins("LEFT JOIN users processor ON processor.id = pending_actions.processed_by").
		Where("pending_actions.id = ?", id).
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

// GetForUpdate блокує рядок заявки до кінця транзакції,
// щоб конкурентні approve/revert не матеріалізували дублікати.
func (i impl) GetForUpdate(tx *gorm.DB, id string) (*dbmodels.PendingAction, error) {
	rec := dbmodels.PendingAction{}
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
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

func (i impl) List() ([]dbmodels.PendingActionView, error) {
	list := []dbmodels.PendingActionView{}
	err := i.db.
		Model(&dbmodels.PendingAction{}).
		Select(viewSelect).
		Joins("LEFT JOIN users submitter ON submitter.id = pending_actions.user_id").
		Joins("LEFT JOIN users processor ON processor.id = pending_actions.processed_by").
		Order("pending_actions.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByStatus(status dbmodels.PendingStatus) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.PendingAction{}).
		Where("status = ?", status).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) Update(tx *gorm.DB, id string, updMap map[string]interface{}) error {
	if tx == nil {
		tx = i.db
	}
	return tx.
		Model(&dbmodels.PendingAction{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Transaction(fn func(tx *gorm.DB) error) error {
	return i.db.Transaction(fn)
}
