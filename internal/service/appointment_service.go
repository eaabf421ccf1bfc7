package service

import (
	"errors"

	"hospital-api/internal/apperr"
	"hospital-api/internal/domain"
)

type AppointmentService struct {
	appointments domain.AppointmentRepository
}

func NewAppointmentService(appointments domain.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

type AppointmentCreateInput struct {
	PatientID uint   `json:"patientId"`
	DoctorID  uint   `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

func (s *AppointmentService) Create(in AppointmentCreateInput) (*domain.Appointment, error) {
	if in.PatientID == 0 || in.DoctorID == 0 || in.Date == "" || in.Time == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, badDate()
	}
	status := in.Status
	if status == "" {
		status = domain.AppointmentPending
	}
	a := &domain.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      date,
		Time:      in.Time,
		Status:    status,
	}
	if err := s.appointments.CreateIfSlotFree(a); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, apperr.BadRequest("This time is already booked with the doctor")
		}
		return nil, apperr.Internal("Failed to create appointment", err)
	}
	return a, nil
}

func (s *AppointmentService) List() ([]domain.Appointment, error) {
	as, err := s.appointments.List()
	if err != nil {
		return nil, apperr.Internal("Failed to list appointments", err)
	}
	return as, nil
}

func (s *AppointmentService) Get(id uint) (*domain.Appointment, error) {
	a, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch appointment", err)
	}
	if a == nil {
		return nil, apperr.NotFound("Appointment not found")
	}
	return a, nil
}

type AppointmentUpdateInput struct {
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status"`
}

// Update 日期或时段任一变化就要用生效后的组合重查冲突，排除自己
func (s *AppointmentService) Update(id uint, in AppointmentUpdateInput) (*domain.Appointment, error) {
	a, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update appointment", err)
	}
	if a == nil {
		return nil, apperr.NotFound("Appointment not found")
	}

	newDate := a.Date
	newSlot := a.Time
	slotChanged := false
	if in.Date != nil && *in.Date != "" {
		d, err := parseDate(*in.Date)
		if err != nil {
			return nil, badDate()
		}
		if !d.Equal(a.Date) {
			slotChanged = true
		}
		newDate = d
	}
	if in.Time != nil && *in.Time != "" {
		if *in.Time != a.Time {
			slotChanged = true
		}
		newSlot = *in.Time
	}

	a.Date = newDate
	a.Time = newSlot
	if in.Status != nil && *in.Status != "" {
		a.Status = *in.Status
	}

	if slotChanged {
		if err := s.appointments.UpdateIfSlotFree(a); err != nil {
			if errors.Is(err, domain.ErrSlotTaken) {
				return nil, apperr.BadRequest("This new time is already booked")
			}
			return nil, apperr.Internal("Failed to update appointment", err)
		}
		return a, nil
	}
	if err := s.appointments.Update(a); err != nil {
		return nil, apperr.Internal("Failed to update appointment", err)
	}
	return a, nil
}

func (s *AppointmentService) Delete(id uint) error {
	a, err := s.appointments.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete appointment", err)
	}
	if a == nil {
		return apperr.NotFound("Appointment not found")
	}
	if err := s.appointments.Delete(id); err != nil {
		return apperr.Internal("Failed to delete appointment", err)
	}
	return nil
}
