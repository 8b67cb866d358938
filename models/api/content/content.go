package contentapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "volonterka-backend/models/db"
)

type ArticleRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Body       string `json:"body"`
	CoverImage string `json:"cover_image"`
	Publish    bool   `json:"publish"`
}

func (r ArticleRequest) Validate() error {
	if r.Title == "" {
		return errors.New("заголовок не вказано")
	}
	return nil
}

type MediaLinkRequest struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Url       string `json:"url"`
	ImagePath string `json:"image_path"`
}

func (r MediaLinkRequest) Validate() error {
	if r.Title == "" {
		return errors.New("заголовок не вказано")
	}
	if r.Url == "" {
		return errors.New("посилання не вказано")
	}
	return nil
}

type DocumentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FilePath    string `json:"file_path"`
	FileType    string `json:"file_type"`
}

func (r DocumentRequest) Validate() error {
	if r.Title == "" {
		return errors.New("заголовок не вказано")
	}
	if r.FilePath == "" {
		return errors.New("файл не вказано")
	}
	return nil
}

type ArticleView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"cover_image,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ArticleConvert(rec dbmodels.Article) ArticleView {
	return ArticleView{
		ID:          rec.ID,
		Title:       rec.Title,
		Excerpt:     rec.Excerpt,
		Body:        rec.Body,
		CoverImage:  rec.CoverImage,
		PublishedAt: rec.PublishedAt,
		CreatedAt:   rec.CreatedAt,
	}
}

type MediaLinkView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Url       string    `json:"url"`
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func MediaLinkConvert(rec dbmodels.MediaLink) MediaLinkView {
	return MediaLinkView{
		ID:        rec.ID,
		Title:     rec.Title,
		Summary:   rec.Summary,
		Url:       rec.Url,
		ImagePath: rec.ImagePath,
		CreatedAt: rec.CreatedAt,
	}
}

type DocumentView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FilePath    string    `json:"file_path"`
	FileType    string    `json:"file_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func DocumentConvert(rec dbmodels.Document) DocumentView {
	return DocumentView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		FilePath:    rec.FilePath,
		FileType:    rec.FileType,
		CreatedAt:   rec.CreatedAt,
	}
}
