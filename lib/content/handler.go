package content

import (
	"time"

	log "github.com/sirupsen/logrus"

	"volonterka-backend/db"
	contentstore "volonterka-backend/lib/content/store"
	contentapimodels "volonterka-backend/models/api/content"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	CreateArticle(req contentapimodels.ArticleRequest) (id string, err error)
	UpdateArticle(id string, req contentapimodels.ArticleRequest) error
	DeleteArticle(id string) error
	ListArticles() ([]contentapimodels.ArticleView, error)
	CreateMediaLink(req contentapimodels.MediaLinkRequest) (id string, err error)
	DeleteMediaLink(id string) error
	ListMediaLinks() ([]contentapimodels.MediaLinkView, error)
	CreateDocument(req contentapimodels.DocumentRequest) (id string, err error)
	DeleteDocument(id string) error
	ListDocuments() ([]contentapimodels.DocumentView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: contentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store contentstore.Provider
}

func (i impl) CreateArticle(req contentapimodels.ArticleRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Article{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
	}
	if req.Publish {
		now := time.Now()
		rec.PublishedAt = &now
	}
	id, err = i.store.CreateArticle(rec)
	if err != nil {
		log.WithError(err).Error("Помилка створення публікації")
		return "", err
	}
	return id, nil
}

func (i impl) UpdateArticle(id string, req contentapimodels.ArticleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"Title":      req.Title,
		"Excerpt":    req.Excerpt,
		"Body":       req.Body,
		"CoverImage": req.CoverImage,
	}
	if req.Publish {
		now := time.Now()
		updMap["PublishedAt"] = &now
	}
	return i.store.UpdateArticle(id, updMap)
}

func (i impl) DeleteArticle(id string) error {
	return i.store.DeleteArticle(id)
}

func (i impl) ListArticles() ([]contentapimodels.ArticleView, error) {
	list, err := i.store.ListArticles()
	if err != nil {
		log.WithError(err).Error("Помилка отримання публікацій")
		return nil, err
	}
	result := make([]contentapimodels.ArticleView, 0, len(list))
	for _, rec := range list {
		result = append(result, contentapimodels.ArticleConvert(rec))
	}
	return result, nil
}

func (i impl) CreateMediaLink(req contentapimodels.MediaLinkRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	return i.store.CreateMediaLink(dbmodels.MediaLink{
		Title:     req.Title,
		Summary:   req.Summary,
		Url:       req.Url,
		ImagePath: req.ImagePath,
	})
}

func (i impl) DeleteMediaLink(id string) error {
	return i.store.DeleteMediaLink(id)
}

func (i impl) ListMediaLinks() ([]contentapimodels.MediaLinkView, error) {
	list, err := i.store.ListMediaLinks()
	if err != nil {
		return nil, err
	}
	result := make([]contentapimodels.MediaLinkView, 0, len(list))
	for _, rec := range list {
		result = append(result, contentapimodels.MediaLinkConvert(rec))
	}
	return result, nil
}

func (i impl) CreateDocument(req contentapimodels.DocumentRequest) (id string, err error) {
	if err = req.Validate(); err != nil {
		return "", err
	}
	return i.store.CreateDocument(dbmodels.Document{
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
		FileType:    req.FileType,
	})
}

func (i impl) DeleteDocument(id string) error {
	return i.store.DeleteDocument(id)
}

func (i impl) ListDocuments() ([]contentapimodels.DocumentView, error) {
	list, err := i.store.ListDocuments()
	if err != nil {
		return nil, err
	}
	result := make([]contentapimodels.DocumentView, 0, len(list))
	for _, rec := range list {
		result = append(result, contentapimodels.DocumentConvert(rec))
	}
	return result, nil
}
