package dbmodels

import "time"

type Article struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null"`
	Excerpt     string `gorm:"type:text"`
	Body        string `gorm:"type:text"`
	CoverImage  string `gorm:"type:varchar(512)"`
	PublishedAt *time.Time
}

func (Article) TableName() string {
	return "articles"
}

type MediaLink struct {
	BaseModel
	Title     string `gorm:"type:varchar(255);not null"`
	Summary   string `gorm:"type:text"`
	Url       string `gorm:"type:varchar(512);not null"`
	ImagePath string `gorm:"type:varchar(512)"`
}

func (MediaLink) TableName() string {
	return "media_links"
}

type Document struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	FilePath    string `gorm:"type:varchar(512);not null"`
	FileType    string `gorm:"type:varchar(20)"`
}

func (Document) TableName() string {
	return "documents"
}
