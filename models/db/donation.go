package dbmodels

type Donation struct {
	BaseModel
	DonorName string `gorm:"type:varchar(255);not null"`
	Amount    int64  `gorm:"not null"`
	Currency  string `gorm:"type:varchar(10);default:'UAH'"`
	Message   string `gorm:"type:text"`
	Public    bool   `gorm:"default:false"`
}

func (Donation) TableName() string {
	return "donations"
}
