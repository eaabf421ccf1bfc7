package service

import (
	"hospital-api/internal/apperr"
	"hospital-api/internal/domain"
)

type MedicalRecordService struct {
	records domain.MedicalRecordRepository
}

func NewMedicalRecordService(records domain.MedicalRecordRepository) *MedicalRecordService {
	return &MedicalRecordService{records: records}
}

type MedicalRecordCreateInput struct {
	PatientID   uint   `json:"patientId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	RecordDate  string `json:"recordDate"`
}

func (s *MedicalRecordService) Create(in MedicalRecordCreateInput) (*domain.MedicalRecord, error) {
	if in.PatientID == 0 || in.Title == "" || in.Description == "" || in.RecordDate == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}
	date, err := parseDate(in.RecordDate)
	if err != nil {
		return nil, badDate()
	}
	m := &domain.MedicalRecord{
		PatientID:   in.PatientID,
		Title:       in.Title,
		Description: in.Description,
		RecordDate:  date,
	}
	if err := s.records.Create(m); err != nil {
		return nil, apperr.Internal("Failed to create medical record", err)
	}
	return m, nil
}

func (s *MedicalRecordService) List() ([]domain.MedicalRecord, error) {
	ms, err := s.records.List()
	if err != nil {
		return nil, apperr.Internal("Failed to list medical records", err)
	}
	return ms, nil
}

func (s *MedicalRecordService) Get(id uint) (*domain.MedicalRecord, error) {
	m, err := s.records.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch medical record", err)
	}
	if m == nil {
		return nil, apperr.NotFound("Medical record not found")
	}
	return m, nil
}

type MedicalRecordUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	RecordDate  *string `json:"recordDate"`
}

func (s *MedicalRecordService) Update(id uint, in MedicalRecordUpdateInput) (*domain.MedicalRecord, error) {
	m, err := s.records.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update medical record", err)
	}
	if m == nil {
		return nil, apperr.NotFound("Medical record not found")
	}

	if in.Title != nil && *in.Title != "" {
		m.Title = *in.Title
	}
	if in.Description != nil && *in.Description != "" {
		m.Description = *in.Description
	}
	if in.RecordDate != nil && *in.RecordDate != "" {
		d, err := parseDate(*in.RecordDate)
		if err != nil {
			return nil, badDate()
		}
		m.RecordDate = d
	}

	if err := s.records.Update(m); err != nil {
		return nil, apperr.Internal("Failed to update medical record", err)
	}
	return m, nil
}

func (s *MedicalRecordService) Delete(id uint) error {
	m, err := s.records.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete medical record", err)
	}
	if m == nil {
		return apperr.NotFound("Medical record not found")
	}
	if err := s.records.Delete(id); err != nil {
		return apperr.Internal("Failed to delete medical record", err)
	}
	return nil
}
