package usecase

import (
	"strings"
	"time"

	"personalityai-service/internal/domain/entity"
)

// FilterAppointments applies the admin console predicates: a status filter
// ("all" or one concrete status), a case-insensitive substring match against
// patient name or email, and an inclusive date range. A nil bound imposes no
// constraint. The function is pure: it never mutates its input.
func FilterAppointments(apts []*entity.Appointment, status, term string, start, end *time.Time) []*entity.Appointment {
	term = strings.ToLower(term)

	var startAt, endAt time.Time
	if start != nil {
		startAt = startOfDay(*start)
	}
	if end != nil {
		endAt = endOfDay(*end)
	}

	out := make([]*entity.Appointment, 0, len(apts))
	for _, apt := range apts {
		if status != "" && status != entity.StatusFilterAll && apt.Status != status {
			continue
		}

		if term != "" &&
			!strings.Contains(strings.ToLower(apt.PatientName), term) &&
			!strings.Contains(strings.ToLower(apt.Email), term) {
			continue
		}

		if start != nil || end != nil {
			date, err := apt.DateValue()
			if err != nil {
				continue
			}
			if start != nil && date.Before(startAt) {
				continue
			}
			if end != nil && date.After(endAt) {
				continue
			}
		}

		out = append(out, apt)
	}
	return out
}

// FilterLogs matches the term case-insensitively against the patient name,
// entry type or admin name
func FilterLogs(logs []*entity.LogEntry, term string) []*entity.LogEntry {
	term = strings.ToLower(term)
	if term == "" {
		return logs
	}

	out := make([]*entity.LogEntry, 0, len(logs))
	for _, log := range logs {
		if strings.Contains(strings.ToLower(log.PatientName), term) ||
			strings.Contains(strings.ToLower(log.Type), term) ||
			strings.Contains(strings.ToLower(log.AdminName), term) {
			out = append(out, log)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay is 23:59:59.999 of the given day, matching the inclusive upper
// bound of the console's date filter
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}
