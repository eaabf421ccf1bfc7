package service

import (
	"hospital-api/internal/apperr"
	"hospital-api/internal/domain"
)

type ReviewService struct {
	reviews domain.ReviewRepository
}

func NewReviewService(reviews domain.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

type ReviewCreateInput struct {
	PatientID uint   `json:"patientId"`
	DoctorID  uint   `json:"doctorId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (s *ReviewService) Create(in ReviewCreateInput) (*domain.Review, error) {
	if in.PatientID == 0 || in.DoctorID == 0 || in.Rating == 0 {
		return nil, apperr.BadRequest("Missing required fields")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.BadRequest("Rating must be between 1 and 5")
	}
	r := &domain.Review{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := s.reviews.Create(r); err != nil {
		return nil, apperr.Internal("Failed to create review", err)
	}
	return r, nil
}

func (s *ReviewService) List() ([]domain.Review, error) {
	rs, err := s.reviews.List()
	if err != nil {
		return nil, apperr.Internal("Failed to list reviews", err)
	}
	return rs, nil
}

func (s *ReviewService) Get(id uint) (*domain.Review, error) {
	r, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch review", err)
	}
	if r == nil {
		return nil, apperr.NotFound("Review not found")
	}
	return r, nil
}

type ReviewUpdateInput struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (s *ReviewService) Update(id uint, in ReviewUpdateInput) (*domain.Review, error) {
	r, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update review", err)
	}
	if r == nil {
		return nil, apperr.NotFound("Review not found")
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, apperr.BadRequest("Rating must be between 1 and 5")
		}
		r.Rating = *in.Rating
	}
	if in.Comment != nil {
		r.Comment = *in.Comment
	}

	if err := s.reviews.Update(r); err != nil {
		return nil, apperr.Internal("Failed to update review", err)
	}
	return r, nil
}

func (s *ReviewService) Delete(id uint) error {
	r, err := s.reviews.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete review", err)
	}
	if r == nil {
		return apperr.NotFound("Review not found")
	}
	if err := s.reviews.Delete(id); err != nil {
		return apperr.Internal("Failed to delete review", err)
	}
	return nil
}
