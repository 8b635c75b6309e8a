package product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetAllProducts(t *testing.T) {
	got := NewService().GetAllProducts()

	want := []Product{
		{ID: 1, Name: "Laptop", Price: 999.99},
		{ID: 2, Name: "Smartphone", Price: 499.49},
		{ID: 3, Name: "Tablet", Price: 299.99},
	}
	assert.Equal(t, want, got)
}

func TestService_GetAllProducts_Idempotent(t *testing.T) {
	svc := NewService()

	first := svc.GetAllProducts()
	second := svc.GetAllProducts()
	assert.Equal(t, first, second)
}

func TestService_GetAllProducts_ReturnsCopy(t *testing.T) {
	svc := NewService()

	first := svc.GetAllProducts()
	first[0].Name = "Desktop"

	assert.Equal(t, "Laptop", svc.GetAllProducts()[0].Name)
}

func TestHandler_List(t *testing.T) {
	h := NewHandler(NewService())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"id":1,"name":"Laptop","price":999.99},
		{"id":2,"name":"Smartphone","price":499.49},
		{"id":3,"name":"Tablet","price":299.99}
	]`, rec.Body.String())

	var products []Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 3)
}
