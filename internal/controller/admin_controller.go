package controller

import (
    "fmt"
    "net/http"
    "time"

    "github.com/garageline/garage-mock-backend/internal/model"
    "github.com/garageline/garage-mock-backend/internal/repository"
)

// Version reported by the service banner.
const Version = "4.0.0"

// AdminController exposes the booking ledger for inspection and clearing.
// There is no creation endpoint; the confirmation flow that feeds the
// ledger is disabled.
type AdminController struct {
    BookingRepo repository.BookingRepositoryInterface
}

// ListBookings handles GET /api/admin/bookings
func (c *AdminController) ListBookings(w http.ResponseWriter, r *http.Request) {
    bookings := c.BookingRepo.List()
    if bookings == nil {
        bookings = []model.Booking{}
    }
    writeJSON(w, http.StatusOK, map[string]any{
        "success":  true,
        "total":    len(bookings),
        "bookings": bookings,
    })
}

// ClearBookings handles DELETE /api/admin/bookings
func (c *AdminController) ClearBookings(w http.ResponseWriter, r *http.Request) {
    n := c.BookingRepo.Clear()
    writeJSON(w, http.StatusOK, map[string]any{
        "success": true,
        "message": fmt.Sprintf("Cleared %d bookings", n),
    })
}

// Root handles GET / with a service banner listing the mounted endpoints.
func Root(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, map[string]any{
        "status":  "Garage mock API online",
        "version": Version,
        "endpoints": []string{
            "POST /api/customer-lookup",
            "POST /api/tire-inventory",
            "POST /api/service-estimate",
            "GET /api/admin/bookings",
            "DELETE /api/admin/bookings",
        },
        "timestamp": time.Now().UTC().Format(time.RFC3339),
    })
}
