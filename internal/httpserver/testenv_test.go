package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopcarts/internal/events"
	"shopcarts/internal/models"
	"shopcarts/internal/repo"
	"shopcarts/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	S  *ShopcartHTTP
	I  *ItemHTTP
	CO *CheckoutHTTP
}

func InitTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Shopcart{}, &models.Item{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := InitTestDB(t)

	svc := &service.ShopcartService{
		Repo: &repo.GormRepo{DB: db},
	}
	producer := &events.Producer{}

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		S:  &ShopcartHTTP{Svc: svc, Producer: producer},
		I:  &ItemHTTP{Svc: svc, Producer: producer},
		CO: &CheckoutHTTP{Svc: svc, Producer: producer},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// createCart seeds a shopcart through the handler and returns the response body.
func (env *testEnv) createCart(customerID uint, items []map[string]any) models.Shopcart {
	if items == nil {
		items = []map[string]any{}
	}
	load := map[string]any{
		"customer_id": customerID,
		"items":       items,
	}

	rec, c := env.doJSONRequest("POST", "/shopcarts", load)
	require.NoError(env.T, env.S.Create(c))
	require.Equal(env.T, 201, rec.Code)

	var cart models.Shopcart
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &cart))
	return cart
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func itemPayload(name string, price float64, quantity int, color string) map[string]any {
	return map[string]any{
		"name":     name,
		"price":    price,
		"quantity": quantity,
		"color":    color,
	}
}
