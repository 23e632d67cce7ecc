package models

// Route is a directed source->destination airport pair with a flight distance.
type Route struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	SourceID      uint `gorm:"not null" json:"source_id"`
	DestinationID uint `gorm:"not null" json:"destination_id"`
	Distance      int  `json:"distance"`

	Source      *Airport `json:"source,omitempty"`
	Destination *Airport `json:"destination,omitempty"`
}

// FullRoute renders the route as "{source city}-{destination city}".
// Both airports must be loaded.
func (r Route) FullRoute() string {
	if r.Source == nil || r.Destination == nil {
		return ""
	}
	return r.Source.ClosestBigCity + "-" + r.Destination.ClosestBigCity
}
