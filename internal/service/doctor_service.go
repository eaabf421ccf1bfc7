package service

import (
	"hospital-api/internal/apperr"
	"hospital-api/internal/domain"
)

type DoctorService struct {
	doctors domain.DoctorRepository
}

func NewDoctorService(doctors domain.DoctorRepository) *DoctorService {
	return &DoctorService{doctors: doctors}
}

type DoctorCreateInput struct {
	UserID         uint   `json:"userId"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Experience     int    `json:"experience"`
	Specialization string `json:"specialization"`
	Availability   string `json:"availability"`
	TimeAvailable  string `json:"timeAvailable"`
	HospitalID     *uint  `json:"hospitalId"`
}

func (s *DoctorService) Create(in DoctorCreateInput) (*domain.Doctor, error) {
	if in.UserID == 0 || in.Name == "" || in.Phone == "" || in.Experience == 0 ||
		in.Specialization == "" || in.Availability == "" || in.TimeAvailable == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}
	d := &domain.Doctor{
		UserID:         in.UserID,
		Name:           in.Name,
		Phone:          in.Phone,
		Experience:     in.Experience,
		Specialization: in.Specialization,
		Availability:   in.Availability,
		TimeAvailable:  in.TimeAvailable,
		HospitalID:     in.HospitalID,
	}
	if err := s.doctors.Create(d); err != nil {
		return nil, apperr.Internal("Failed to create doctor", err)
	}
	return d, nil
}

func (s *DoctorService) List() ([]domain.Doctor, error) {
	ds, err := s.doctors.List()
	if err != nil {
		return nil, apperr.Internal("Failed to list doctors", err)
	}
	return ds, nil
}

func (s *DoctorService) Get(id uint) (*domain.Doctor, error) {
	d, err := s.doctors.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch doctor", err)
	}
	if d == nil || d.IsDeleted {
		return nil, apperr.NotFound("Doctor not found")
	}
	return d, nil
}

type DoctorUpdateInput struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Experience     *int    `json:"experience"`
	Specialization *string `json:"specialization"`
	Availability   *string `json:"availability"`
	TimeAvailable  *string `json:"timeAvailable"`
	HospitalID     *uint   `json:"hospitalId"`
}

func (s *DoctorService) Update(id uint, in DoctorUpdateInput) (*domain.Doctor, error) {
	d, err := s.doctors.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update doctor", err)
	}
	if d == nil || d.IsDeleted {
		return nil, apperr.NotFound("Doctor not found")
	}

	if in.Name != nil && *in.Name != "" {
		d.Name = *in.Name
	}
	if in.Phone != nil && *in.Phone != "" {
		d.Phone = *in.Phone
	}
	if in.Experience != nil {
		d.Experience = *in.Experience
	}
	if in.Specialization != nil && *in.Specialization != "" {
		d.Specialization = *in.Specialization
	}
	if in.Availability != nil && *in.Availability != "" {
		d.Availability = *in.Availability
	}
	if in.TimeAvailable != nil && *in.TimeAvailable != "" {
		d.TimeAvailable = *in.TimeAvailable
	}
	if in.HospitalID != nil {
		d.HospitalID = in.HospitalID
	}

	if err := s.doctors.Update(d); err != nil {
		return nil, apperr.Internal("Failed to update doctor", err)
	}
	return d, nil
}

func (s *DoctorService) Delete(id uint) error {
	d, err := s.doctors.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete doctor", err)
	}
	if d == nil || d.IsDeleted {
		return apperr.NotFound("Doctor not found")
	}
	d.IsDeleted = true
	if err := s.doctors.Update(d); err != nil {
		return apperr.Internal("Failed to delete doctor", err)
	}
	return nil
}
