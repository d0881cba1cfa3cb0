package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/safar/go-retail-store/internal/models"
	"github.com/safar/go-retail-store/internal/store"
)

func TestCustomerOrdersEndpointMethods(t *testing.T) {
	logger = zap.NewNop()

	customers := store.NewCustomers()
	orders := store.NewOrders(store.NewProducts())

	alice := models.NewCustomer("Alice", "alice@example.com")
	customers.RegisterCustomer(alice)

	handler := handleCustomerByID(customers, orders)
	url := fmt.Sprintf("/customers/%d/orders", alice.ID)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET: expected status 200, got %d", w.Code)
	}

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, url, nil)
		w := httptest.NewRecorder()
		handler(w, req)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected status 405, got %d", method, w.Code)
		}
	}
}
