package service

import (
	"courtbook/internal/domains/booking/model"
	"courtbook/internal/domains/booking/model/dto"
	paymentModel "courtbook/internal/domains/payment/model"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"courtbook/shared/timezone"
	"courtbook/shared/validator"
	"fmt"
	"math"
	"strings"
	"time"
)

// Build validates a selection and assembles the booking request. It performs no I/O.
// Slots must arrive ordered; they are never sorted on the caller's behalf.
func Build(req dto.SelectionRequest) (model.BookingRequest, error) {
	req.CustomerInfo = dto.CustomerInfo{
		FullName:    strings.TrimSpace(req.CustomerInfo.FullName),
		Email:       strings.TrimSpace(req.CustomerInfo.Email),
		PhoneNumber: strings.TrimSpace(req.CustomerInfo.PhoneNumber),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return model.BookingRequest{}, err //nolint:wrapcheck
	}

	date, err := timezone.Parse(constant.DayFormat, req.Date)
	if err != nil {
		return model.BookingRequest{}, failure.Validation("date", "must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	slots := make([]model.TimeSlot, 0, len(req.TimeSlots))

	var sum int64

	for i, selection := range req.TimeSlots {
		field := fmt.Sprintf("timeSlots[%d]", i)

		slot, err := toSlot(date, selection)
		if err != nil {
			return model.BookingRequest{}, failure.Validation(field, err.Error()) //nolint:wrapcheck
		}

		if !slot.Start.Before(slot.End) {
			return model.BookingRequest{}, failure.Validation(field, "start must be before end") //nolint:wrapcheck
		}

		if i > 0 {
			prev := slots[i-1]

			if slot.Start.Before(prev.Start) {
				return model.BookingRequest{}, failure.Validation(field, "must be in chronological order") //nolint:wrapcheck
			}

			if slot.Start.Before(prev.End) {
				return model.BookingRequest{}, failure.Validation(field, "overlaps the previous slot") //nolint:wrapcheck
			}
		}

		if slot.Price > math.MaxInt64-sum {
			return model.BookingRequest{}, failure.Validation("timeSlots", "total price is too large") //nolint:wrapcheck
		}

		sum += slot.Price
		slots = append(slots, slot)
	}

	courts := int64(len(req.CourtIDs))
	if courts > 0 && sum > math.MaxInt64/courts {
		return model.BookingRequest{}, failure.Validation("timeSlots", "total price is too large") //nolint:wrapcheck
	}

	return model.BookingRequest{
		VenueID:       req.VenueID,
		CourtIDs:      append([]string(nil), req.CourtIDs...),
		Date:          date,
		TimeSlots:     slots,
		PaymentMethod: paymentModel.Method(req.PaymentMethod),
		CustomerInfo: model.CustomerInfo{
			FullName:    req.CustomerInfo.FullName,
			Email:       req.CustomerInfo.Email,
			PhoneNumber: req.CustomerInfo.PhoneNumber,
		},
		Notes:         req.Notes,
		TotalPrice:    sum * courts,
		CourtQuantity: len(req.CourtIDs),
	}, nil
}

func toSlot(date time.Time, selection dto.TimeSlotSelection) (model.TimeSlot, error) {
	start, err := onDate(date, selection.Start)
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("invalid start time %q", selection.Start)
	}

	end, err := onDate(date, selection.End)
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("invalid end time %q", selection.End)
	}

	return model.TimeSlot{Start: start, End: end, Price: selection.Price}, nil
}

func onDate(date time.Time, wallClock string) (time.Time, error) {
	clock, err := time.Parse(constant.WallTimeFormat, wallClock)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}
