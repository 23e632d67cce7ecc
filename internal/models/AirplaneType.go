package models

type AirplaneType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name" binding:"required"`

	Airplanes []Airplane `gorm:"foreignKey:AirplaneTypeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"airplanes,omitempty"`
}
