package model

// PatientView mirrors the backend patient row (snake_case, string
// dates) exactly as the create/list commands return it.
type PatientView struct {
	ID        string `db:"id" json:"id"`
	FullName  string `db:"full_name" json:"full_name"`
	CPF       string `db:"cpf" json:"cpf"`
	BirthDate string `db:"birth_date" json:"birth_date"`
	Sex       string `db:"sex" json:"sex"`
	Phone     string `db:"phone" json:"phone"`
	Address   string `db:"address" json:"address"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at"`
}

// Patient is the UI-facing patient model.
type Patient struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`
	Sex       string `json:"sex"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PatientDraft is a patient-creation submission before validation.
// Email is optional; the record view derives a synthetic one anyway.
type PatientDraft struct {
	FullName  string `json:"full_name"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// CreatePatientInput is the backend-ready patient creation record:
// CPF reduced to 11 digits, birth date in ISO YYYY-MM-DD.
type CreatePatientInput struct {
	FullName  string `db:"full_name" json:"full_name"`
	CPF       string `db:"cpf" json:"cpf"`
	BirthDate string `db:"birth_date" json:"birth_date"`
	Sex       string `db:"sex" json:"sex"`
	Phone     string `db:"phone" json:"phone"`
	Address   string `db:"address" json:"address"`
}
