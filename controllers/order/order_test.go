package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/controllers/kaspi"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func postOrder(t *testing.T, db *gorm.DB, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", CreateOrder(db, nil, NewHub(zap.NewNop()), zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderRejectsPickupWithoutLocation(t *testing.T) {
	// An omitted (or zero) pickup_location_id must never reach the database.
	w := postOrder(t, nil, `{"items":[{"product_id":1,"quantity":1}],"delivery_type":"pickup"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pickup_location_id is required")
}

func TestCreateOrderDefaultsEmptyTypeToPickup(t *testing.T) {
	// delivery_type omitted means pickup, so the location guard applies too.
	w := postOrder(t, nil, `{"items":[{"product_id":1,"quantity":1}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pickup_location_id is required")
}

func TestCreateOrderRejectsDeliveryWithoutAddress(t *testing.T) {
	w := postOrder(t, nil, `{"items":[{"product_id":1,"quantity":1}],"delivery_type":"delivery","delivery_address":"  "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "delivery_address is required")
}

func TestCreateOrderRejectsUnknownDeliveryType(t *testing.T) {
	w := postOrder(t, nil, `{"items":[{"product_id":1,"quantity":1}],"delivery_type":"teleport"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid delivery type")
}

func kaspiPaid(t *testing.T) *kaspi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"paid"}`))
	}))
	t.Cleanup(srv.Close)
	return kaspi.NewClient(srv.URL, "secret", "merchant-1", zap.NewNop())
}

func TestStatusPromotionCommitsBonusWithStatus(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "total_amount", "bonus_earned", "status", "payment_token", "payment_url"}).
		AddRow(5, 7, 4200.0, 42, "pending", "tok", "https://kaspi.kz/pay/tok")
	mock.ExpectQuery(`SELECT \* FROM "orders"`).WillReturnRows(rows)

	// One transaction carries both the status flip and the bonus credit.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/status/:orderID", GetOrderStatus(db, kaspiPaid(t), NewHub(zap.NewNop()), zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/status/5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"paid"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusPromotionRollsBackWhenBonusCreditFails(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "total_amount", "bonus_earned", "status", "payment_token", "payment_url"}).
		AddRow(5, 7, 4200.0, 42, "pending", "tok", "https://kaspi.kz/pay/tok")
	mock.ExpectQuery(`SELECT \* FROM "orders"`).WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/status/:orderID", GetOrderStatus(db, kaspiPaid(t), NewHub(zap.NewNop()), zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/status/5", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusGuestPaidSkipsBonusCredit(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "total_amount", "bonus_earned", "status", "payment_token", "payment_url"}).
		AddRow(5, nil, 4200.0, 0, "pending", "tok", "https://kaspi.kz/pay/tok")
	mock.ExpectQuery(`SELECT \* FROM "orders"`).WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/status/:orderID", GetOrderStatus(db, kaspiPaid(t), NewHub(zap.NewNop()), zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/status/5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
