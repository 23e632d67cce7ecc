package models

import "fmt"

// Ticket reserves a single (row, seat) place on one flight. The composite
// unique index is what serializes concurrent bookings of the same seat:
// two racing inserts for (flight, row, seat) cannot both commit.
type Ticket struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	Row      int  `gorm:"not null;uniqueIndex:idx_ticket_flight_row_seat" json:"row"`
	Seat     int  `gorm:"not null;uniqueIndex:idx_ticket_flight_row_seat" json:"seat"`
	OrderID  uint `gorm:"not null" json:"order_id"`
	FlightID uint `gorm:"not null;uniqueIndex:idx_ticket_flight_row_seat" json:"flight_id"`

	Flight *Flight `json:"flight,omitempty"`
}

// SeatValidationError reports a seat coordinate outside the airplane's grid,
// attributed to the offending field ("row" or "seat").
type SeatValidationError struct {
	Field   string
	Message string
}

func (e *SeatValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateSeat checks that (row, seat) lies inside the airplane's seat grid.
// It deliberately does not look for collisions with existing tickets; that
// is left to the unique index at insert time, since a pre-check here would
// race with other writers.
func ValidateSeat(row, seat int, airplane Airplane) error {
	checks := []struct {
		value     int
		field     string
		limitName string
		limit     int
	}{
		{row, "row", "rows", airplane.Rows},
		{seat, "seat", "seats_in_row", airplane.SeatsInRow},
	}

	for _, check := range checks {
		if check.value < 1 || check.value > check.limit {
			return &SeatValidationError{
				Field: check.field,
				Message: fmt.Sprintf(
					"%s number must be in available range: (1, %s): (1, %d)",
					check.field, check.limitName, check.limit,
				),
			}
		}
	}
	return nil
}
