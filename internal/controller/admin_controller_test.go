package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garageline/garage-mock-backend/internal/controller"
	"github.com/garageline/garage-mock-backend/internal/model"
	"github.com/garageline/garage-mock-backend/internal/repository"
)

func getJSON(t *testing.T, handler http.HandlerFunc, method, path string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := w.Result()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, body
}

func TestListBookingsEmpty(t *testing.T) {
	ctrl := &controller.AdminController{BookingRepo: repository.NewBookingRepository()}

	resp, body := getJSON(t, ctrl.ListBookings, "GET", "/api/admin/bookings")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["total"] != float64(0) {
		t.Errorf("expected total 0, got %v", body["total"])
	}
	if _, ok := body["bookings"].([]any); !ok {
		t.Errorf("expected bookings array, got %v", body["bookings"])
	}
}

func TestClearBookingsReportsCount(t *testing.T) {
	repo := repository.NewBookingRepository()
	for i := 0; i < 3; i++ {
		repo.Append(model.NewBooking(fmt.Sprintf("CUST%03d", i), "ZH12345", time.Now().Add(24*time.Hour), "oil_change", "sms"))
	}
	ctrl := &controller.AdminController{BookingRepo: repo}

	resp, body := getJSON(t, ctrl.ListBookings, "GET", "/api/admin/bookings")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["total"] != float64(3) {
		t.Fatalf("expected total 3, got %v", body["total"])
	}

	resp, body = getJSON(t, ctrl.ClearBookings, "DELETE", "/api/admin/bookings")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["message"] != "Cleared 3 bookings" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	_, body = getJSON(t, ctrl.ListBookings, "GET", "/api/admin/bookings")
	if body["total"] != float64(0) {
		t.Errorf("expected empty ledger after clear, got %v", body["total"])
	}
}

func TestRootBanner(t *testing.T) {
	resp, body := getJSON(t, controller.Root, "GET", "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["version"] != controller.Version {
		t.Errorf("expected version %s, got %v", controller.Version, body["version"])
	}
	endpoints, ok := body["endpoints"].([]any)
	if !ok || len(endpoints) == 0 {
		t.Fatalf("expected endpoint list, got %v", body["endpoints"])
	}
	if _, err := time.Parse(time.RFC3339, body["timestamp"].(string)); err != nil {
		t.Errorf("timestamp not RFC3339: %v", body["timestamp"])
	}
}
