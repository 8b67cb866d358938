package feedbackstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"volonterka-backend/models"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.VolunteerFeedback) (id string, err error)
	GetByID(id string) (*dbmodels.VolunteerFeedback, error)
	List() ([]dbmodels.VolunteerFeedback, error)
	ListPaginated(status string, page, limit int) (list []dbmodels.VolunteerFeedback, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.VolunteerFeedback) (id string, err error) {
	if rec.Status == "" {
		rec.Status = models.FeedbackStatusNew
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.VolunteerFeedback, error) {
	rec := dbmodels.VolunteerFeedback{}
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

func (i impl) List() ([]dbmodels.VolunteerFeedback, error) {
	list := []dbmodels.VolunteerFeedback{}
	err := i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPaginated(status string, page, limit int) (list []dbmodels.VolunteerFeedback, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.VolunteerFeedback{})
	if status != "" && status != "all" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	list = []dbmodels.VolunteerFeedback{}
	offset := (page - 1) * limit
	err = tx.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.VolunteerFeedback{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
