package models

import "time"

// Flight is a scheduled departure of an airplane over a route, staffed by crew.
type Flight struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RouteID       uint      `gorm:"not null" json:"route_id"`
	AirplaneID    uint      `gorm:"not null" json:"airplane_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`

	Route    *Route    `json:"route,omitempty"`
	Airplane *Airplane `json:"airplane,omitempty"`
	Crew     []Crew    `gorm:"many2many:flight_crew;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"crew,omitempty"`
	Tickets  []Ticket  `gorm:"foreignKey:FlightID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tickets,omitempty"`
}
