package model

import (
	paymentModel "courtbook/internal/domains/payment/model"
	"time"
)

const EntityName = "booking"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// TimeSlot is one booked interval on the booking date. Price is charged per selected court.
type TimeSlot struct {
	Start time.Time
	End   time.Time
	Price int64
}

type CustomerInfo struct {
	FullName    string
	Email       string
	PhoneNumber string
}

// BookingRequest is a validated selection. Slots are ordered and do not overlap.
type BookingRequest struct {
	VenueID       string
	CourtIDs      []string
	Date          time.Time
	TimeSlots     []TimeSlot
	PaymentMethod paymentModel.Method
	CustomerInfo  CustomerInfo
	Notes         string
	TotalPrice    int64
	CourtQuantity int
}
