package financing_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/financing"
)

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/store/financing/simulate", SimulateFinancing)
	r.POST("/store/financing/quote", DownloadFinancingQuote)
	return r
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSimulateFinancing(t *testing.T) {
	w := post(router(), "/store/financing/simulate", financing.Request{
		Price:       12000,
		DownPayment: 2000,
		AnnualRate:  12,
		Months:      12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data financing.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 10000.0, env.Data.Principal)
	assert.Equal(t, 888.49, env.Data.MonthlyPayment)
	assert.Len(t, env.Data.Schedule, 12)
	assert.Zero(t, env.Data.Schedule[11].Balance)
}

func TestSimulateFinancingRejectsBadTerms(t *testing.T) {
	r := router()

	w := post(r, "/store/financing/simulate", map[string]any{"price": 10000})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/store/financing/simulate", financing.Request{Price: 10000, DownPayment: 10000, Months: 12})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/store/financing/simulate", financing.Request{Price: 10000, Months: financing.MaxMonths + 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadFinancingQuote(t *testing.T) {
	prev := loadInventory
	loadInventory = func(context.Context) (*cache.Snapshot, error) { return &cache.Snapshot{}, nil }
	t.Cleanup(func() { loadInventory = prev })

	w := post(router(), "/store/financing/quote", map[string]any{
		"price":         25000,
		"down_payment":  5000,
		"annual_rate":   18.5,
		"months":        48,
		"car_id":        "missing-car",
		"customer_name": "Ana Machava",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "financing-quote-")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}
