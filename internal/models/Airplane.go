package models

type Airplane struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"uniqueIndex;not null" json:"name"`
	Rows           int    `gorm:"not null" json:"rows"`
	SeatsInRow     int    `gorm:"not null" json:"seats_in_row"`
	AirplaneTypeID uint   `gorm:"not null" json:"airplane_type_id"`
	// Relative path of the uploaded image under MEDIA_ROOT, empty if none
	Image string `json:"image,omitempty"`

	AirplaneType *AirplaneType `json:"airplane_type,omitempty"`
}

// Capacity is the total number of seats in the airplane's seat grid.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}
