package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
)

func newOrderRouter(mc *marketplace.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("email", "a@x.com")
		c.Set("auth_token", "Bearer test")
	})
	r.GET("/orders", GetUserOrders(mc))
	r.POST("/orders/place", PlaceOrder(mc))
	r.PUT("/orders/:orderID/cancel", CancelOrder(mc))
	return r
}

func TestCancelOrder_OwnershipChecked(t *testing.T) {
	var cancelled []string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/order-list":
			w.Write([]byte(`{"success":true,"data":[
				{"_id":"mine","userEmail":"a@x.com","status":"Ordered"},
				{"_id":"theirs","userEmail":"b@x.com","status":"Ordered"}
			]}`))
		case "/api/cancel-order":
			var req struct {
				OrderID string `json:"orderId"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			cancelled = append(cancelled, req.OrderID)
			w.Write([]byte(`{"success":true}`))
		}
	}))
	defer upstream.Close()

	router := newOrderRouter(marketplace.NewClient(upstream.URL))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/mine/cancel", nil))
	if w.Code != http.StatusOK {
		t.Errorf("cancel own order: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/theirs/cancel", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("cancel another user's order: status = %d, want %d", w.Code, http.StatusNotFound)
	}

	if len(cancelled) != 1 || cancelled[0] != "mine" {
		t.Errorf("upstream cancellations = %v, want [mine]", cancelled)
	}
}

func TestPlaceOrder_RejectsEmptyOrder(t *testing.T) {
	router := newOrderRouter(marketplace.NewClient("http://unused.invalid"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/place", strings.NewReader(`{"products":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetUserOrders_SurfacesUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"order source down"}`))
	}))
	defer upstream.Close()

	router := newOrderRouter(marketplace.NewClient(upstream.URL))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}
