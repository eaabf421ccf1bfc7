package service

import (
	"hospital-api/internal/apperr"
	"hospital-api/internal/domain"
)

type PatientService struct {
	patients domain.PatientRepository
}

func NewPatientService(patients domain.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

type PatientCreateInput struct {
	UserID      uint   `json:"userId"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

func (s *PatientService) Create(in PatientCreateInput) (*domain.Patient, error) {
	if in.UserID == 0 || in.DateOfBirth == "" || in.Gender == "" || in.Phone == "" || in.Address == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}
	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return nil, badDate()
	}
	p := &domain.Patient{
		UserID:      in.UserID,
		DateOfBirth: dob,
		Gender:      in.Gender,
		Phone:       in.Phone,
		Address:     in.Address,
	}
	if err := s.patients.Create(p); err != nil {
		return nil, apperr.Internal("Failed to create patient", err)
	}
	return p, nil
}

func (s *PatientService) List() ([]domain.Patient, error) {
	ps, err := s.patients.List()
	if err != nil {
		return nil, apperr.Internal("Failed to list patients", err)
	}
	return ps, nil
}

func (s *PatientService) Get(id uint) (*domain.Patient, error) {
	p, err := s.patients.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch patient", err)
	}
	if p == nil || p.IsDeleted {
		return nil, apperr.NotFound("Patient not found")
	}
	return p, nil
}

type PatientUpdateInput struct {
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

func (s *PatientService) Update(id uint, in PatientUpdateInput) (*domain.Patient, error) {
	p, err := s.patients.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update patient", err)
	}
	if p == nil || p.IsDeleted {
		return nil, apperr.NotFound("Patient not found")
	}

	if in.DateOfBirth != nil && *in.DateOfBirth != "" {
		dob, err := parseDate(*in.DateOfBirth)
		if err != nil {
			return nil, badDate()
		}
		p.DateOfBirth = dob
	}
	if in.Gender != nil && *in.Gender != "" {
		p.Gender = *in.Gender
	}
	if in.Phone != nil && *in.Phone != "" {
		p.Phone = *in.Phone
	}
	if in.Address != nil && *in.Address != "" {
		p.Address = *in.Address
	}

	if err := s.patients.Update(p); err != nil {
		return nil, apperr.Internal("Failed to update patient", err)
	}
	return p, nil
}

// Delete 软删，行留在库里但从列表和详情消失
func (s *PatientService) Delete(id uint) error {
	p, err := s.patients.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete patient", err)
	}
	if p == nil || p.IsDeleted {
		return apperr.NotFound("Patient not found")
	}
	p.IsDeleted = true
	if err := s.patients.Update(p); err != nil {
		return apperr.Internal("Failed to delete patient", err)
	}
	return nil
}
