package marketplace

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Products(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathProducts {
			t.Errorf("path = %s, want %s", r.URL.Path, pathProducts)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"_id":"p1","productName":"Buffet","category":"catering","price":3000,"vendorEmail":"v1@x.com","rating":4}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("len(products) = %d, want 1", len(products))
	}
	p := products[0]
	if p.ID != "p1" || p.Category != "catering" || p.Price != 3000 || p.VendorEmail != "v1@x.com" {
		t.Errorf("decoded product = %+v", p)
	}
}

func TestClient_SuccessFalseIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"catalog unavailable"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Products(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "catalog unavailable" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "catalog unavailable")
	}
}

func TestClient_Non2xxIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Products(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusBadGateway)
	}
}

func TestClient_UserOrdersFiltersByExactEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"_id":"o1","userEmail":"a@x.com","status":"Ordered"},
			{"_id":"o2","userEmail":"b@x.com","status":"Ordered"},
			{"_id":"o3","userEmail":"A@x.com","status":"Ordered"},
			{"_id":"o4","userEmail":"a@x.com","status":"Cancelled"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	orders, err := c.UserOrders(context.Background(), "Bearer t", "a@x.com")
	if err != nil {
		t.Fatalf("UserOrders() error = %v", err)
	}

	// Exact match: the case-variant email must not slip through, and the
	// cancelled order is kept here (exclusion belongs to the analyzer).
	if len(orders) != 2 {
		t.Fatalf("len(orders) = %d, want 2", len(orders))
	}
	if orders[0].ID != "o1" || orders[1].ID != "o4" {
		t.Errorf("orders = [%s %s], want [o1 o4]", orders[0].ID, orders[1].ID)
	}
}

func TestClient_ForwardsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"_id":"u1","name":"A","email":"a@x.com","role":"customer"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	user, err := c.CurrentUser(context.Background(), "Bearer abc")
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer abc")
	}
	if user.Email != "a@x.com" {
		t.Errorf("user.Email = %q, want a@x.com", user.Email)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	if _, err := c.Products(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
