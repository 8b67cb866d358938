package dbmodels

type VehicleStatus string

const (
	VehicleStatusInService VehicleStatus = "in_service" // на виїздах
	VehicleStatusRepair    VehicleStatus = "repair"     // в ремонті
	VehicleStatusDelivered VehicleStatus = "delivered"  // передано підрозділу
	VehicleStatusNeeded    VehicleStatus = "needed"     // збираємо кошти
)

type Vehicle struct {
	BaseModel
	Name        string        `gorm:"type:varchar(255);not null"`
	Description string        `gorm:"type:text"`
	Status      VehicleStatus `gorm:"type:varchar(20);default:'needed'"`
	Category    string        `gorm:"type:varchar(100)"`
	ImagePath   string        `gorm:"type:varchar(512)"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
