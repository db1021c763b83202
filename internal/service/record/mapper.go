package record

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/aleviannaf/laboratory-app/internal/model"
)

const (
	emailDomain      = "@email.com"
	placeholderEmail = "paciente" + emailDomain
)

// MapRecord transforms a raw backend record payload into the UI view
// model. It is total: any well-formed DTO maps without error, unknown
// values degrade to safe defaults.
func MapRecord(dto model.PatientRecordDTO) model.PatientRecordView {
	entries := make([]model.RecordEntry, 0, len(dto.Entries))
	for _, entry := range dto.Entries {
		entries = append(entries, MapEntry(entry))
	}

	return model.PatientRecordView{
		Patient: model.Patient{
			ID:        dto.Patient.ID,
			FullName:  dto.Patient.FullName,
			CPF:       dto.Patient.CPF,
			BirthDate: dto.Patient.BirthDate,
			Sex:       dto.Patient.Sex,
			Phone:     dto.Patient.Phone,
			Address:   dto.Patient.Address,
			CreatedAt: dto.Patient.CreatedAt,
			UpdatedAt: dto.Patient.UpdatedAt,
		},
		Email:   DeriveEmail(dto.Patient.FullName),
		Entries: entries,
	}
}

// MapEntry converts one record entry; the entry status applies to all
// of its exams.
func MapEntry(dto model.PatientRecordEntryDTO) model.RecordEntry {
	exams := make([]model.RecordExam, 0, len(dto.Items))
	for _, item := range dto.Items {
		exams = append(exams, model.RecordExam{
			ID:              item.ExamItemID,
			Name:            item.Name,
			Protocol:        deriveProtocol(item.ExamItemID),
			Status:          mapStatus(dto.Status),
			ReportAvailable: item.ReportAvailable,
		})
	}

	return model.RecordEntry{
		ID:    dto.ExamID,
		Date:  FormatDisplayDate(dto.ExamDate),
		Exams: exams,
	}
}

func mapStatus(status string) model.RecordExamStatus {
	if strings.EqualFold(status, "completed") {
		return model.RecordExamStatusCompleted
	}
	return model.RecordExamStatusPending
}

// deriveProtocol is a display convenience: the first 8 characters of
// the item identifier, upper-cased. Not unique beyond the identifier.
func deriveProtocol(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

var (
	isoDateOnly = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	isoDateTime = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T`)
)

// FormatDisplayDate rewrites YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS as
// DD/MM/YYYY. Dates are civil (no timezone), so this is pure string
// slicing; anything else passes through unchanged.
func FormatDisplayDate(value string) string {
	raw := strings.TrimSpace(value)

	if m := isoDateOnly.FindStringSubmatch(raw); m != nil {
		return m[3] + "/" + m[2] + "/" + m[1]
	}
	if m := isoDateTime.FindStringSubmatch(raw); m != nil {
		return m[3] + "/" + m[2] + "/" + m[1]
	}
	return raw
}

// DeriveEmail builds a synthetic display address from the full name:
// diacritics stripped, lower-cased, whitespace collapsed to single
// dots, everything outside [a-z.] dropped. An empty result falls back
// to a fixed placeholder. This is not a real contact channel.
func DeriveEmail(fullName string) string {
	decomposed := norm.NFD.String(fullName)

	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	lowered := strings.ToLower(strings.TrimSpace(b.String()))
	dotted := strings.Join(strings.Fields(lowered), ".")

	var local strings.Builder
	for _, r := range dotted {
		if (r >= 'a' && r <= 'z') || r == '.' {
			local.WriteRune(r)
		}
	}

	if local.Len() == 0 {
		return placeholderEmail
	}
	return local.String() + emailDomain
}
