package scheduling

import (
	"fmt"
	"strings"
	"time"

	"mindwell/models"
	"mindwell/utils"

	"go.uber.org/zap"
)

const slotMinutes = models.DefaultSessionDuration

// GetAvailableSlots derives the free slots for a therapist on the given
// date. Availability is never stored: it is the weekly working-hours
// template minus days off and existing bookings, computed on demand.
func (s *DefaultSchedulingService) GetAvailableSlots(therapistID string, date time.Time) ([]models.Slot, error) {
	profile, err := s.Therapists.GetByUserID(therapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapist profile: %w", err)
	}
	if profile == nil {
		return nil, &NotFoundError{Message: "Therapist not found"}
	}

	for _, off := range profile.DaysOff {
		if sameDate(off, date) {
			return []models.Slot{}, nil
		}
	}

	weekday := strings.ToLower(date.Weekday().String())
	hours, ok := profile.WorkingHours[weekday]
	if !ok {
		return []models.Slot{}, nil
	}

	dayStart, dayEnd, err := resolveWindow(date, hours)
	if err != nil {
		utils.GetLogger().Warn("therapist has malformed working hours",
			zap.String("therapistId", therapistID), zap.String("weekday", weekday), zap.Error(err))
		return []models.Slot{}, nil
	}

	// Fetch the whole calendar day, not just the working window: a session
	// that starts before the window can still run into it.
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	booked, err := s.Sessions.ListByTherapistBetween(therapistID, midnight, midnight.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load existing bookings: %w", err)
	}

	return generateSlots(dayStart, dayEnd, booked), nil
}

// generateSlots walks the working window in consecutive fixed-length steps
// and keeps each slot that fits the window and overlaps no booking.
// Overlap is half-open: a session ending exactly at a slot's start does not
// block it.
func generateSlots(dayStart, dayEnd time.Time, booked []models.Session) []models.Slot {
	slots := []models.Slot{}
	for cur := dayStart; ; cur = cur.Add(slotMinutes * time.Minute) {
		slotEnd := cur.Add(slotMinutes * time.Minute)
		if slotEnd.After(dayEnd) {
			break
		}
		if overlapsAny(cur, slotEnd, booked) {
			continue
		}
		slots = append(slots, models.Slot{Start: cur, End: slotEnd})
	}
	return slots
}

func overlapsAny(start, end time.Time, booked []models.Session) bool {
	for i := range booked {
		if start.Before(booked[i].End()) && end.After(booked[i].DateTime) {
			return true
		}
	}
	return false
}

// resolveWindow anchors a "HH:MM" working-hours pair onto the given
// calendar date, in the date's location.
func resolveWindow(date time.Time, hours models.WorkingHours) (time.Time, time.Time, error) {
	start, err := atClock(date, hours.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time %q: %w", hours.Start, err)
	}
	end, err := atClock(date, hours.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time %q: %w", hours.End, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("window end %q not after start %q", hours.End, hours.Start)
	}
	return start, end, nil
}

func atClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
