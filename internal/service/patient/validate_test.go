package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleviannaf/laboratory-app/internal/model"
)

func validDraft() model.PatientDraft {
	return model.PatientDraft{
		FullName:  "  Maria Souza  ",
		CPF:       "123.456.789-01",
		BirthDate: "01/10/1990",
		Phone:     "(11) 98888-7777",
		Address:   "Rua das Flores, 10",
	}
}

func TestNormalizeCPF(t *testing.T) {
	cpf, err := NormalizeCPF("123.456.789-01")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", cpf)

	cpf, err = NormalizeCPF("12345678901")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", cpf)

	_, err = NormalizeCPF("123.456.789-0")
	assert.EqualError(t, err, "CPF invalido. Informe 11 digitos.")

	_, err = NormalizeCPF("123456789012")
	assert.Error(t, err)
}

func TestNormalizeBirthDateAcceptedForms(t *testing.T) {
	// ISO, Brazilian and bare-digit forms converge on the ISO date.
	for _, raw := range []string{"1990-10-01", "01/10/1990", "01101990", " 1990-10-01 "} {
		got, err := NormalizeBirthDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "1990-10-01", got, raw)
	}
}

func TestNormalizeBirthDateRejectsInvalid(t *testing.T) {
	for _, raw := range []string{
		"30/02/1990", // not a calendar date
		"31/04/2000",
		"29/02/2023", // not a leap year
		"00/10/1990",
		"01/13/1990",
		"01/10/1899", // below year floor
		"01/10/2101", // above year ceiling
		"1990/10/01",
		"19901001x",
		"amanha",
		"",
	} {
		_, err := NormalizeBirthDate(raw)
		assert.EqualError(t, err, "Data de nascimento invalida.", raw)
	}
}

func TestNormalizeBirthDateLeapDay(t *testing.T) {
	got, err := NormalizeBirthDate("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)
}

func TestBuildCreateInput(t *testing.T) {
	input, err := BuildCreateInput(validDraft())
	require.NoError(t, err)

	assert.Equal(t, "Maria Souza", input.FullName)
	assert.Equal(t, "12345678901", input.CPF)
	assert.Equal(t, "1990-10-01", input.BirthDate)
	assert.Equal(t, "N/A", input.Sex)
	assert.Equal(t, "(11) 98888-7777", input.Phone)
	assert.Equal(t, "Rua das Flores, 10", input.Address)
}

func TestBuildCreateInputFailsInOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.PatientDraft)
		message string
	}{
		{"missing name", func(d *model.PatientDraft) { d.FullName = "   " }, "Nome e obrigatorio."},
		{"missing cpf", func(d *model.PatientDraft) { d.CPF = "" }, "CPF e obrigatorio."},
		{"short cpf", func(d *model.PatientDraft) { d.CPF = "123" }, "CPF invalido. Informe 11 digitos."},
		{"missing birth date", func(d *model.PatientDraft) { d.BirthDate = "  " }, "Nascimento e obrigatorio."},
		{"bad birth date", func(d *model.PatientDraft) { d.BirthDate = "30/02/1990" }, "Data de nascimento invalida."},
		{"missing phone", func(d *model.PatientDraft) { d.Phone = "" }, "Telefone e obrigatorio."},
		{"missing address", func(d *model.PatientDraft) { d.Address = " " }, "Endereco e obrigatorio."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			_, err := BuildCreateInput(draft)
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestBuildCreateInputFirstFailureWins(t *testing.T) {
	// Name and CPF both invalid; the name message wins because rules
	// run in a fixed order.
	draft := validDraft()
	draft.FullName = ""
	draft.CPF = "123"

	_, err := BuildCreateInput(draft)
	assert.EqualError(t, err, "Nome e obrigatorio.")
}
