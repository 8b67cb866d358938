package dbmodels

type DonorReview struct {
	BaseModel
	UserID     *string `gorm:"type:varchar(36);index"`
	AuthorName string  `gorm:"type:varchar(255);not null"`
	Rating     *int
	Message    string `gorm:"type:text;not null"`
	Public     bool   `gorm:"default:false"`
}

func (DonorReview) TableName() string {
	return "donor_reviews"
}
