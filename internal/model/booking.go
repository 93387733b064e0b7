package model

import (
    "strings"
    "time"

    "github.com/google/uuid"
)

// Booking is one ledger entry. Entries only ever come from the (currently
// disabled) confirmation flow, so the ledger exists for inspection and
// clearing, not for serving customers.
type Booking struct {
    BookingID              string    `json:"booking_id"`
    CustomerID             string    `json:"customer_id"`
    Plate                  string    `json:"plate"`
    AppointmentDatetime    time.Time `json:"appointment_datetime"`
    ServiceType            string    `json:"service_type"`
    Status                 string    `json:"status"`
    ConfirmationCode       string    `json:"confirmation_code"`
    CreatedAt              time.Time `json:"created_at"`
    NotificationPreference string    `json:"notification_preference"`
}

// NewBooking builds a pending ledger entry with generated booking id and
// confirmation code. Only the confirmation flow (and tests) call this; no
// HTTP route creates bookings.
func NewBooking(customerID, plate string, appointment time.Time, serviceType, notificationPreference string) Booking {
    code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
    return Booking{
        BookingID:              "BK-" + uuid.NewString(),
        CustomerID:             customerID,
        Plate:                  plate,
        AppointmentDatetime:    appointment,
        ServiceType:            serviceType,
        Status:                 "pending",
        ConfirmationCode:       code,
        CreatedAt:              time.Now().UTC(),
        NotificationPreference: notificationPreference,
    }
}
