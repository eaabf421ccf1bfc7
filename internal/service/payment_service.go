package service

import (
	"time"

	"hospital-api/internal/apperr"
	"hospital-api/internal/domain"
)

type PaymentService struct {
	payments     domain.PaymentRepository
	appointments domain.AppointmentRepository
}

func NewPaymentService(payments domain.PaymentRepository, appointments domain.AppointmentRepository) *PaymentService {
	return &PaymentService{payments: payments, appointments: appointments}
}

type PaymentCreateInput struct {
	AppointmentID uint    `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	PaidAt        *string `json:"paidAt"`
}

// Create 预约必须存在，且一个预约最多一笔支付
func (s *PaymentService) Create(in PaymentCreateInput) (*domain.Payment, error) {
	if in.AppointmentID == 0 || in.Amount <= 0 || in.Method == "" || in.Status == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}

	appt, err := s.appointments.FindByID(in.AppointmentID)
	if err != nil {
		return nil, apperr.Internal("Failed to create payment", err)
	}
	if appt == nil {
		return nil, apperr.NotFound("Appointment not found")
	}

	existing, err := s.payments.FindByAppointment(in.AppointmentID)
	if err != nil {
		return nil, apperr.Internal("Failed to create payment", err)
	}
	if existing != nil {
		return nil, apperr.BadRequest("Payment already exists for this appointment")
	}

	p := &domain.Payment{
		AppointmentID: in.AppointmentID,
		Amount:        in.Amount,
		Method:        in.Method,
		Status:        in.Status,
	}
	if in.PaidAt != nil && *in.PaidAt != "" {
		t, err := time.Parse(time.RFC3339, *in.PaidAt)
		if err != nil {
			return nil, apperr.BadRequest("Invalid paidAt, use RFC3339")
		}
		p.PaidAt = &t
	}
	if err := s.payments.Create(p); err != nil {
		return nil, apperr.Internal("Failed to create payment", err)
	}
	return p, nil
}

func (s *PaymentService) List() ([]domain.Payment, error) {
	ps, err := s.payments.List()
	if err != nil {
		return nil, apperr.Internal("Failed to list payments", err)
	}
	return ps, nil
}

func (s *PaymentService) Get(id uint) (*domain.Payment, error) {
	p, err := s.payments.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch payment", err)
	}
	if p == nil {
		return nil, apperr.NotFound("Payment not found")
	}
	return p, nil
}

type PaymentUpdateInput struct {
	Amount *float64 `json:"amount"`
	Method *string  `json:"method"`
	Status *string  `json:"status"`
	PaidAt *string  `json:"paidAt"`
}

func (s *PaymentService) Update(id uint, in PaymentUpdateInput) (*domain.Payment, error) {
	p, err := s.payments.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update payment", err)
	}
	if p == nil {
		return nil, apperr.NotFound("Payment not found")
	}

	if in.Amount != nil && *in.Amount > 0 {
		p.Amount = *in.Amount
	}
	if in.Method != nil && *in.Method != "" {
		p.Method = *in.Method
	}
	if in.Status != nil && *in.Status != "" {
		p.Status = *in.Status
	}
	if in.PaidAt != nil && *in.PaidAt != "" {
		t, err := time.Parse(time.RFC3339, *in.PaidAt)
		if err != nil {
			return nil, apperr.BadRequest("Invalid paidAt, use RFC3339")
		}
		p.PaidAt = &t
	}

	if err := s.payments.Update(p); err != nil {
		return nil, apperr.Internal("Failed to update payment", err)
	}
	return p, nil
}

func (s *PaymentService) Delete(id uint) error {
	p, err := s.payments.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete payment", err)
	}
	if p == nil {
		return apperr.NotFound("Payment not found")
	}
	if err := s.payments.Delete(id); err != nil {
		return apperr.Internal("Failed to delete payment", err)
	}
	return nil
}
