package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/sterling-client/models"
)

const dateLayout = "2006-01-02"

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

func validateNewReservation(req models.NewReservation) error {
	if req.DiningRoomID <= 0 {
		return fmt.Errorf("%w: dining room is required", ErrInvalidReservation)
	}
	if err := validateDate(req.Date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReservation, err)
	}
	if !req.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal type %q", ErrInvalidReservation, req.MealType)
	}
	if strings.TrimSpace(req.StartTime) == "" || strings.TrimSpace(req.EndTime) == "" {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidReservation)
	}
	return nil
}

func validateReservationUpdate(upd models.ReservationUpdate) error {
	if upd.Date != nil {
		if err := validateDate(*upd.Date); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidReservation, err)
		}
	}
	if upd.MealType != nil && !upd.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal type %q", ErrInvalidReservation, *upd.MealType)
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidReservation, *upd.Status)
	}
	return nil
}

func validateNewMember(req models.NewMember) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMember)
	}
	return nil
}

func validateNewAttendee(req models.NewAttendee) error {
	if req.MemberID != nil {
		if *req.MemberID <= 0 {
			return fmt.Errorf("%w: member id %d", ErrInvalidAttendee, *req.MemberID)
		}
		return nil
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: a member or a guest name is required", ErrInvalidAttendee)
	}
	return nil
}
