package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/aleviannaf/laboratory-app/internal/backend"
	"github.com/aleviannaf/laboratory-app/internal/model"
	apperrors "github.com/aleviannaf/laboratory-app/pkg/errors"
)

type Service struct {
	bridge backend.Bridge
}

func NewService(bridge backend.Bridge) *Service {
	return &Service{bridge: bridge}
}

// BuildCreateInput normalizes and validates a creation submission.
// Rules run in order; the first failure aborts with its field message
// and nothing reaches the backend.
func BuildCreateInput(draft model.PatientDraft) (model.CreatePatientInput, error) {
	var input model.CreatePatientInput

	fullName := strings.TrimSpace(draft.FullName)
	if fullName == "" {
		return input, apperrors.NewValidation(msgNameRequired)
	}

	if strings.TrimSpace(draft.CPF) == "" {
		return input, apperrors.NewValidation(msgCPFRequired)
	}
	cpf, err := NormalizeCPF(draft.CPF)
	if err != nil {
		return input, err
	}

	if strings.TrimSpace(draft.BirthDate) == "" {
		return input, apperrors.NewValidation(msgBirthRequired)
	}
	birthDate, err := NormalizeBirthDate(draft.BirthDate)
	if err != nil {
		return input, err
	}

	phone := strings.TrimSpace(draft.Phone)
	if phone == "" {
		return input, apperrors.NewValidation(msgPhoneRequired)
	}

	address := strings.TrimSpace(draft.Address)
	if address == "" {
		return input, apperrors.NewValidation(msgAddressRequired)
	}

	return model.CreatePatientInput{
		FullName:  fullName,
		CPF:       cpf,
		BirthDate: birthDate,
		Sex:       sexPendingUIField,
		Phone:     phone,
		Address:   address,
	}, nil
}

// Create validates the draft and invokes the backend creation command.
func (s *Service) Create(ctx context.Context, draft model.PatientDraft) (*model.Patient, error) {
	input, err := BuildCreateInput(draft)
	if err != nil {
		return nil, err
	}

	view, err := s.bridge.CreatePatient(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	patient := mapView(*view)
	return &patient, nil
}

// List fetches patients, passing a trimmed non-empty query or none.
func (s *Service) List(ctx context.Context, query string) ([]model.Patient, error) {
	views, err := s.bridge.ListPatients(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	patients := make([]model.Patient, 0, len(views))
	for _, view := range views {
		patients = append(patients, mapView(view))
	}
	return patients, nil
}

func mapView(view model.PatientView) model.Patient {
	return model.Patient{
		ID:        view.ID,
		FullName:  view.FullName,
		CPF:       view.CPF,
		BirthDate: view.BirthDate,
		Sex:       view.Sex,
		Phone:     view.Phone,
		Address:   view.Address,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}
