package services

import (
	"context"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
)

// StudentService defines the interface for student profile operations
type StudentService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.StudentResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	// GetStudentID resolves the student profile ID owned by a user account
	GetStudentID(ctx context.Context, userID int64) (int64, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// GetProfile returns the calling user's student profile
func (s *studentServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentResponse{
		ID:          student.ID,
		FullName:    student.FullName,
		Email:       student.Email,
		Phone:       student.Phone,
		AddressLine: student.AddressLine,
		City:        student.City,
		Country:     student.Country,
		DateOfBirth: student.DateOfBirth,
		Gender:      student.Gender,
		CreatedAt:   student.CreatedAt,
		UpdatedAt:   student.UpdatedAt,
	}, nil
}

// GetStudentID resolves the student profile ID owned by a user account
func (s *studentServiceImpl) GetStudentID(ctx context.Context, userID int64) (int64, error) {
	student, err := s.studentRepo.GetStudentByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return student.ID, nil
}

// UpdateProfile applies a partial update to the calling user's profile
func (s *studentServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.UpdateStudent(ctx, student.ID, req); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}
