package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeat(t *testing.T) {
	airplane := Airplane{Rows: 19, SeatsInRow: 7}

	cases := []struct {
		name      string
		row, seat int
		wantField string
		wantMsg   string
	}{
		{name: "first seat", row: 1, seat: 1},
		{name: "last seat", row: 19, seat: 7},
		{name: "middle seat", row: 10, seat: 4},
		{
			name: "row zero", row: 0, seat: 1,
			wantField: "row",
			wantMsg:   "row number must be in available range: (1, rows): (1, 19)",
		},
		{
			name: "row past last", row: 20, seat: 1,
			wantField: "row",
			wantMsg:   "row number must be in available range: (1, rows): (1, 19)",
		},
		{
			name: "seat zero", row: 1, seat: 0,
			wantField: "seat",
			wantMsg:   "seat number must be in available range: (1, seats_in_row): (1, 7)",
		},
		{
			name: "seat past last", row: 1, seat: 8,
			wantField: "seat",
			wantMsg:   "seat number must be in available range: (1, seats_in_row): (1, 7)",
		},
		{
			name: "row checked before seat", row: 0, seat: 0,
			wantField: "row",
			wantMsg:   "row number must be in available range: (1, rows): (1, 19)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSeat(tc.row, tc.seat, airplane)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var seatErr *SeatValidationError
			require.ErrorAs(t, err, &seatErr)
			assert.Equal(t, tc.wantField, seatErr.Field)
			assert.Equal(t, tc.wantMsg, seatErr.Message)
		})
	}
}

func TestAirplaneCapacity(t *testing.T) {
	airplane := Airplane{Rows: 19, SeatsInRow: 7}
	assert.Equal(t, 133, airplane.Capacity())
}

func TestRouteFullRoute(t *testing.T) {
	route := Route{
		Source:      &Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"},
		Destination: &Airport{Name: "Danylo Halytskyi", ClosestBigCity: "Lviv"},
	}
	assert.Equal(t, "Kyiv-Lviv", route.FullRoute())

	assert.Equal(t, "", Route{}.FullRoute())
}

func TestCrewFullName(t *testing.T) {
	member := Crew{FirstName: "Amelia", LastName: "Earhart"}
	assert.Equal(t, "Amelia Earhart", member.FullName())
}
