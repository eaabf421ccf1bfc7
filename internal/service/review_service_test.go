package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewRatingBounds(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	for _, bad := range []int{-1, 6, 100} {
		_, err := svc.Create(ReviewCreateInput{PatientID: 1, DoctorID: 2, Rating: bad})
		status, msg := statusOf(t, err)
		assert.Equal(t, 400, status)
		assert.Equal(t, "Rating must be between 1 and 5", msg)
	}
	// 越界的评分一条都不该落库
	assert.Empty(t, repo.items)

	r, err := svc.Create(ReviewCreateInput{PatientID: 1, DoctorID: 2, Rating: 5, Comment: "great"})
	assert.NoError(t, err)
	assert.Equal(t, 5, r.Rating)

	// 更新同样卡 [1,5]
	six := 6
	_, err = svc.Update(r.ID, ReviewUpdateInput{Rating: &six})
	status, _ := statusOf(t, err)
	assert.Equal(t, 400, status)

	one := 1
	got, err := svc.Update(r.ID, ReviewUpdateInput{Rating: &one})
	assert.NoError(t, err)
	assert.Equal(t, 1, got.Rating)
	assert.Equal(t, "great", got.Comment)
}

func TestReviewMissingFields(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	_, err := svc.Create(ReviewCreateInput{DoctorID: 2, Rating: 3})
	status, msg := statusOf(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Missing required fields", msg)
}

func TestReviewNotFound(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	_, err := svc.Get(9)
	status, msg := statusOf(t, err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Review not found", msg)

	err = svc.Delete(9)
	status, _ = statusOf(t, err)
	assert.Equal(t, 404, status)
}
