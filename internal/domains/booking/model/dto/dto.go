package dto

import (
	"courtbook/internal/domains/booking/model"
	paymentDto "courtbook/internal/domains/payment/model/dto"
	"courtbook/shared/constant"
	"courtbook/shared/timezone"
	"time"
)

// SelectionRequest is what the user picked in the booking flow.
type SelectionRequest struct {
	VenueID       string              `json:"venueId"       validate:"required"`
	CourtIDs      []string            `json:"courtIds"      validate:"required,min=1,unique,dive,required"`
	Date          string              `json:"date"          validate:"required,day"`
	TimeSlots     []TimeSlotSelection `json:"timeSlots"     validate:"required,min=1,dive"`
	PaymentMethod string              `json:"paymentMethod" validate:"required,oneof=payos momo zalopay banking"`
	CustomerInfo  CustomerInfo        `json:"customerInfo"  validate:"required"`
	Notes         string              `json:"notes"         validate:"omitempty,max=500"`
}

type TimeSlotSelection struct {
	Start string `json:"start" validate:"required,wallclock"`
	End   string `json:"end"   validate:"required,wallclock"`
	Price int64  `json:"price" validate:"gte=0"`
}

type CustomerInfo struct {
	FullName    string `json:"fullName"    validate:"required,max=100"`
	Email       string `json:"email"       validate:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=20"`
}

// BookingCreateRequest is the body of POST /api/v1/bookings.
type BookingCreateRequest struct {
	VenueID       string         `json:"venueId"`
	CourtIDs      []string       `json:"courtIds"`
	Date          string         `json:"date"`
	TimeSlots     []WireTimeSlot `json:"timeSlots"`
	PaymentMethod string         `json:"paymentMethod"`
	CustomerInfo  CustomerInfo   `json:"customerInfo"`
	Notes         string         `json:"notes,omitempty"`
	TotalPrice    int64          `json:"totalPrice"`
	CourtQuantity int            `json:"courtQuantity"`
}

type WireTimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int64  `json:"price"`
}

// ToWire renames slot start and end to startTime and endTime.
func ToWire(req model.BookingRequest) BookingCreateRequest {
	slots := make([]WireTimeSlot, 0, len(req.TimeSlots))
	for _, slot := range req.TimeSlots {
		slots = append(slots, WireTimeSlot{
			StartTime: slot.Start.Format(constant.WallTimeFormat),
			EndTime:   slot.End.Format(constant.WallTimeFormat),
			Price:     slot.Price,
		})
	}

	return BookingCreateRequest{
		VenueID:       req.VenueID,
		CourtIDs:      append([]string(nil), req.CourtIDs...),
		Date:          req.Date.Format(constant.DayFormat),
		TimeSlots:     slots,
		PaymentMethod: string(req.PaymentMethod),
		CustomerInfo: CustomerInfo{
			FullName:    req.CustomerInfo.FullName,
			Email:       req.CustomerInfo.Email,
			PhoneNumber: req.CustomerInfo.PhoneNumber,
		},
		Notes:         req.Notes,
		TotalPrice:    req.TotalPrice,
		CourtQuantity: req.CourtQuantity,
	}
}

// BookingResponse is the backend's read-only projection of a booking.
type BookingResponse struct {
	ID            string              `json:"id"            validate:"required"`
	BookingCode   string              `json:"bookingCode"`
	VenueID       string              `json:"venueId"`
	CourtIDs      []string            `json:"courtIds"`
	Date          string              `json:"date"`
	TimeSlots     []WireTimeSlot      `json:"timeSlots"`
	PaymentMethod string              `json:"paymentMethod"`
	CustomerInfo  *CustomerInfo       `json:"customerInfo,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	TotalPrice    int64               `json:"totalPrice"`
	CourtQuantity int                 `json:"courtQuantity"`
	Status        model.BookingStatus `json:"status"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
	CreatedAt     *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time          `json:"updatedAt,omitempty"`
}

// BookingPreviewResponse is a built booking that has not been submitted.
type BookingPreviewResponse struct {
	Booking BookingCreateRequest `json:"booking"`
	BuiltAt time.Time            `json:"builtAt"`
}

func NewPreview(req model.BookingRequest) BookingPreviewResponse {
	return BookingPreviewResponse{
		Booking: ToWire(req),
		BuiltAt: timezone.Now(),
	}
}

type CheckoutResponse struct {
	Booking BookingResponse                `json:"booking"`
	Payment paymentDto.PaymentCreateResult `json:"payment"`
}

// PaymentRequest derives the payment for a created booking. The amount is the booking total.
func PaymentRequest(req model.BookingRequest, booking BookingResponse) paymentDto.PaymentCreateRequest {
	description := booking.BookingCode
	if description == "" {
		description = booking.ID
	}

	return paymentDto.PaymentCreateRequest{
		BookingID:     booking.ID,
		Amount:        req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		Description:   description,
		BuyerName:     req.CustomerInfo.FullName,
		BuyerEmail:    req.CustomerInfo.Email,
		BuyerPhone:    req.CustomerInfo.PhoneNumber,
	}
}
