package patient

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/aleviannaf/laboratory-app/pkg/errors"
)

// Validation messages are user-facing and field-named; rules run in a
// fixed order and the first failure aborts the submission before any
// backend contact.
const (
	msgNameRequired    = "Nome e obrigatorio."
	msgCPFRequired     = "CPF e obrigatorio."
	msgCPFInvalid      = "CPF invalido. Informe 11 digitos."
	msgBirthRequired   = "Nascimento e obrigatorio."
	msgBirthInvalid    = "Data de nascimento invalida."
	msgPhoneRequired   = "Telefone e obrigatorio."
	msgAddressRequired = "Endereco e obrigatorio."
)

// sexPendingUIField fills the sex field until the creation form grows
// one; a known gap, not to be silently fixed here.
const sexPendingUIField = "N/A"

// NormalizeCPF strips every non-digit character. Validity is purely
// length-based (11 digits); the check-digit algorithm is deliberately
// not applied.
func NormalizeCPF(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() != 11 {
		return "", apperrors.NewValidation(msgCPFInvalid)
	}
	return digits.String(), nil
}

// NormalizeBirthDate accepts ISO YYYY-MM-DD, Brazilian DD/MM/YYYY or
// 8 bare digits DDMMYYYY, and returns the ISO form. The date must be
// calendar-valid: components are range-checked and the reconstructed
// date must round-trip exactly, so 30/02 is rejected.
func NormalizeBirthDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	var year, month, day int
	switch {
	case len(trimmed) == 10 && trimmed[4] == '-' && trimmed[7] == '-':
		year = atoi(trimmed[0:4])
		month = atoi(trimmed[5:7])
		day = atoi(trimmed[8:10])
	case len(trimmed) == 10 && trimmed[2] == '/' && trimmed[5] == '/':
		day = atoi(trimmed[0:2])
		month = atoi(trimmed[3:5])
		year = atoi(trimmed[6:10])
	case len(trimmed) == 8 && allDigits(trimmed):
		day = atoi(trimmed[0:2])
		month = atoi(trimmed[2:4])
		year = atoi(trimmed[4:8])
	default:
		return "", apperrors.NewValidation(msgBirthInvalid)
	}

	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", apperrors.NewValidation(msgBirthInvalid)
	}

	// time.Date normalizes overflowing components (Feb 30 becomes
	// Mar 1), so an exact round-trip proves calendar validity.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return "", apperrors.NewValidation(msgBirthInvalid)
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
