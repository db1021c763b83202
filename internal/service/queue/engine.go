package queue

import (
	"strings"

	"github.com/aleviannaf/laboratory-app/internal/model"
)

// Pure filtering and transition logic over attendance item snapshots.
// All functions are non-mutating: results are new collections (or the
// input itself when the operation is an identity).

// FilterByDate keeps items whose scheduling date equals dateISO
// (YYYY-MM-DD). The comparison is on the date portion of the civil
// timestamp, a prefix of the first 10 characters.
func FilterByDate(items []model.AttendanceItem, dateISO string) []model.AttendanceItem {
	out := make([]model.AttendanceItem, 0, len(items))
	for _, item := range items {
		if dateOnly(item.ScheduledAt) == dateISO {
			out = append(out, item)
		}
	}
	return out
}

// FilterByTab partitions by status: the scheduled tab shows waiting
// items, the completed tab shows done items.
func FilterByTab(items []model.AttendanceItem, tab model.AttendanceTab) []model.AttendanceItem {
	status := model.AttendanceStatusWaiting
	if tab == model.AttendanceTabCompleted {
		status = model.AttendanceStatusDone
	}

	out := make([]model.AttendanceItem, 0, len(items))
	for _, item := range items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// FilterByQuery keeps items whose patient name, protocol or exam names
// contain the query, case-insensitively. An empty or whitespace-only
// query returns the input unchanged.
func FilterByQuery(items []model.AttendanceItem, query string) []model.AttendanceItem {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return items
	}

	out := make([]model.AttendanceItem, 0, len(items))
	for _, item := range items {
		text := strings.ToLower(item.PatientName + " " + item.Protocol + " " + strings.Join(item.Exams, " "))
		if strings.Contains(text, normalized) {
			out = append(out, item)
		}
	}
	return out
}

// CountByTab counts waiting and done items within the given date only;
// tab counts are date-scoped, never global.
func CountByTab(items []model.AttendanceItem, dateISO string) model.AttendanceTabCounts {
	var counts model.AttendanceTabCounts
	for _, item := range FilterByDate(items, dateISO) {
		switch item.Status {
		case model.AttendanceStatusWaiting:
			counts.Scheduled++
		case model.AttendanceStatusDone:
			counts.Completed++
		}
	}
	return counts
}

// MarkAsDone returns a new collection where the item with the given id
// transitions waiting -> done with CompletedAt set to whenISO. Items
// already done are left untouched, so double completion is idempotent.
// There is no reverse transition.
func MarkAsDone(items []model.AttendanceItem, id string, whenISO string) []model.AttendanceItem {
	out := make([]model.AttendanceItem, len(items))
	for i, item := range items {
		if item.ID == id && item.Status != model.AttendanceStatusDone {
			item.Status = model.AttendanceStatusDone
			item.CompletedAt = whenISO
		}
		out[i] = item
	}
	return out
}

// FindByID returns the item with the given id, if present.
func FindByID(items []model.AttendanceItem, id string) (model.AttendanceItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return model.AttendanceItem{}, false
}

func dateOnly(civilTimestamp string) string {
	if len(civilTimestamp) < 10 {
		return civilTimestamp
	}
	return civilTimestamp[:10]
}
