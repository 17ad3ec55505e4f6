package reviewControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/sentiment"
)

func TestGetTestimonialSentiment(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("approved") != "true" {
			t.Error("expected approved=true filter on testimonial fetch")
		}
		w.Write([]byte(`{"success":true,"data":[
			{"_id":"t1","userEmail":"a@x.com","message":"Excellent catering, very professional"},
			{"_id":"t2","userEmail":"b@x.com","message":"Terrible delay, the food arrived late"},
			{"_id":"t3","userEmail":"c@x.com","message":"Great value, will recommend"}
		]}`))
	}))
	defer upstream.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/testimonials/sentiment", GetTestimonialSentiment(marketplace.NewClient(upstream.URL)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/testimonials/sentiment", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data sentiment.Summary `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Positive != 2 || resp.Data.Negative != 1 || resp.Data.Total != 3 {
		t.Errorf("summary = %+v, want 2 positive, 1 negative, 3 total", resp.Data)
	}
	if resp.Data.Overall != sentiment.Positive {
		t.Errorf("overall = %q, want %q", resp.Data.Overall, sentiment.Positive)
	}
}

func TestGetTestimonials_Annotated(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"_id":"t1","userEmail":"a@x.com","message":"Wonderful decorations"}
		]}`))
	}))
	defer upstream.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/testimonials", GetTestimonials(marketplace.NewClient(upstream.URL)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/testimonials", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Data []struct {
			Message   string           `json:"message"`
			Sentiment sentiment.Result `json:"sentiment"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(resp.Data))
	}
	if resp.Data[0].Sentiment.Label != sentiment.Positive {
		t.Errorf("sentiment = %q, want %q", resp.Data[0].Sentiment.Label, sentiment.Positive)
	}
}
