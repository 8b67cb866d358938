package dbmodels

type Volunteer struct {
	BaseModel
	FullName string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(20);not null"`
	Email    string `gorm:"type:varchar(255)"`
	Region   string `gorm:"type:varchar(255)"`
	Skills   string `gorm:"type:varchar(255)"`
	Comment  string `gorm:"type:text"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}
