package contentstore

import (
	"gorm.io/gorm"

	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	CreateArticle(rec dbmodels.Article) (id string, err error)
	UpdateArticle(id string, updMap map[string]interface{}) error
	DeleteArticle(id string) error
	ListArticles() ([]dbmodels.Article, error)
	CreateMediaLink(rec dbmodels.MediaLink) (id string, err error)
	DeleteMediaLink(id string) error
	ListMediaLinks() ([]dbmodels.MediaLink, error)
	CreateDocument(rec dbmodels.Document) (id string, err error)
	DeleteDocument(id string) error
	ListDocuments() ([]dbmodels.Document, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateArticle(rec dbmodels.Article) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateArticle(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Article{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) DeleteArticle(id string) error {
	rec := dbmodels.Article{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) ListArticles() ([]dbmodels.Article, error) {
	list := []dbmodels.Article{}
	err := i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateMediaLink(rec dbmodels.MediaLink) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeleteMediaLink(id string) error {
	rec := dbmodels.MediaLink{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) ListMediaLinks() ([]dbmodels.MediaLink, error) {
	list := []dbmodels.MediaLink{}
	err := i.db.
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateDocument(rec dbmodels.Document) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeleteDocument(id string) error {
	rec := dbmodels.Document{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) ListDocuments() ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	err := i.db.
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
