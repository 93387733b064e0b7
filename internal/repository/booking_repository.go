package repository

import (
    "sync"

    "github.com/garageline/garage-mock-backend/internal/model"
)

// BookingRepositoryInterface defines methods used by the admin endpoints
type BookingRepositoryInterface interface {
    Append(b model.Booking)
    List() []model.Booking
    Clear() int
}

// BookingRepository is an in-memory, append-only booking ledger. It is the
// only mutable shared state in the process, so append, list, and clear all
// take the lock; List hands back a copy so callers never see a torn slice.
type BookingRepository struct {
    mu       sync.Mutex
    bookings []model.Booking
}

func NewBookingRepository() *BookingRepository {
    return &BookingRepository{}
}

func (r *BookingRepository) Append(b model.Booking) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.bookings = append(r.bookings, b)
}

func (r *BookingRepository) List() []model.Booking {
    r.mu.Lock()
    defer r.mu.Unlock()
    out := make([]model.Booking, len(r.bookings))
    copy(out, r.bookings)
    return out
}

// Clear empties the ledger and returns how many entries were removed.
func (r *BookingRepository) Clear() int {
    r.mu.Lock()
    defer r.mu.Unlock()
    n := len(r.bookings)
    r.bookings = nil
    return n
}

var _ BookingRepositoryInterface = (*BookingRepository)(nil)
