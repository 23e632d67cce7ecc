package models

type Crew struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"first_name" binding:"required"`
	LastName  string `gorm:"not null" json:"last_name" binding:"required"`
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
