package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport_api/internal/config"
)

const testUserID = 7

func setupOrderRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	config.DB = db

	gin.SetMode(gin.TestMode)
	r := gin.New()
	// stand-in for RequireAuth: JWT numeric claims decode as float64
	r.POST("/orders", func(c *gin.Context) {
		c.Set("user_id", float64(testUserID))
		CreateOrder(c)
	})
	return r, mock
}

func postOrder(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// expectFlightLookup arranges the flight + airplane queries CreateOrder
// issues before validating: an airplane with 19 rows of 7 seats.
func expectFlightLookup(mock sqlmock.Sqlmock, flightID uint) {
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "flights"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "route_id", "airplane_id", "departure_time", "arrival_time"}).
			AddRow(flightID, 1, 3, now, now.Add(2*time.Hour)))
	mock.ExpectQuery(`SELECT \* FROM "airplanes"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "rows", "seats_in_row", "airplane_type_id", "image"}).
			AddRow(3, "Dreamliner", 19, 7, 1, ""))
}

func TestCreateOrder_EmptyTicketList(t *testing.T) {
	r, mock := setupOrderRouter(t)

	w := postOrder(r, `{"tickets": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// nothing may be written for a rejected order
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RowOutOfRange(t *testing.T) {
	r, mock := setupOrderRouter(t)
	expectFlightLookup(mock, 5)

	w := postOrder(r, `{"tickets": [{"row": 20, "seat": 1, "flight_id": 5}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "row number must be in available range: (1, rows): (1, 19)", body["row"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_SeatOutOfRange(t *testing.T) {
	r, mock := setupOrderRouter(t)
	expectFlightLookup(mock, 5)

	w := postOrder(r, `{"tickets": [{"row": 1, "seat": 8, "flight_id": 5}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "seat number must be in available range: (1, seats_in_row): (1, 7)", body["seat"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_OneInvalidTicketWritesNothing(t *testing.T) {
	r, mock := setupOrderRouter(t)
	expectFlightLookup(mock, 5)

	// first ticket is fine, second is out of range: no insert may happen
	w := postOrder(r, `{"tickets": [
		{"row": 1, "seat": 1, "flight_id": 5},
		{"row": 0, "seat": 1, "flight_id": 5}
	]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_UnknownFlight(t *testing.T) {
	r, mock := setupOrderRouter(t)
	mock.ExpectQuery(`SELECT \* FROM "flights"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "route_id", "airplane_id", "departure_time", "arrival_time"}))

	w := postOrder(r, `{"tickets": [{"row": 1, "seat": 1, "flight_id": 999}]}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_Success(t *testing.T) {
	r, mock := setupOrderRouter(t)
	expectFlightLookup(mock, 5)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WithArgs(sqlmock.AnyArg(), testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))
	mock.ExpectCommit()

	// corner seats of the 19x7 grid
	w := postOrder(r, `{"tickets": [
		{"row": 1, "seat": 1, "flight_id": 5},
		{"row": 19, "seat": 7, "flight_id": 5}
	]}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp orderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(11), resp.ID)
	require.Len(t, resp.Tickets, 2)
	assert.Equal(t, uint(21), resp.Tickets[0].ID)
	assert.Equal(t, 19, resp.Tickets[1].Row)
	assert.Equal(t, 7, resp.Tickets[1].Seat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_DuplicateSeatRollsBack(t *testing.T) {
	r, mock := setupOrderRouter(t)
	expectFlightLookup(mock, 5)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	w := postOrder(r, `{"tickets": [{"row": 3, "seat": 4, "flight_id": 5}]}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
