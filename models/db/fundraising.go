package dbmodels

type GoalStatus string

const (
	GoalStatusActive GoalStatus = "active"
	GoalStatusPaused GoalStatus = "paused"
	GoalStatusDone   GoalStatus = "done"
)

type FundraisingGoal struct {
	BaseModel
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	TargetAmount int64      `gorm:"not null"`
	Status       GoalStatus `gorm:"type:varchar(20);default:'active'"`
}

func (FundraisingGoal) TableName() string {
	return "fundraising_goals"
}

type BankAccount struct {
	BaseModel
	Label     string `gorm:"type:varchar(255);not null"`
	Recipient string `gorm:"type:varchar(255);not null"`
	Iban      string `gorm:"type:varchar(34);not null"`
	Edrpou    string `gorm:"type:varchar(10)"`
	Purpose   string `gorm:"type:varchar(255)"`
}

func (BankAccount) TableName() string {
	return "bank_accounts"
}
