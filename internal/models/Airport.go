package models

type Airport struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"uniqueIndex;not null" json:"name" binding:"required"`
	ClosestBigCity string `gorm:"not null" json:"closest_big_city" binding:"required"`

	// Routes departing from / arriving at this airport
	SourceRoutes      []Route `gorm:"foreignKey:SourceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"source_routes,omitempty"`
	DestinationRoutes []Route `gorm:"foreignKey:DestinationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"destination_routes,omitempty"`
}
