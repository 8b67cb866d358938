package dbmodels

type Withdrawal struct {
	BaseModel
	Amount      int64   `gorm:"not null"`
	Description string  `gorm:"type:text"`
	CreatedBy   *string `gorm:"type:varchar(36);index"`
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}
