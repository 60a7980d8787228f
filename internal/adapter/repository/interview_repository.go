package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/interview-coach-team/interview-analyzer/errors"
	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

// InterviewRepository implements the interview repository interface using GORM
type InterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{
		db: db,
	}
}

// Create creates a new interview
func (r *InterviewRepository) Create(ctx context.Context, interview *entities.Interview) error {
	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	return nil
}

// FindByID finds an interview by ID
func (r *InterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	var interview entities.Interview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interview).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrInterviewNotFound
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return &interview, nil
}

// FindAll lists interviews, newest first
func (r *InterviewRepository) FindAll(ctx context.Context, limit, offset int) ([]*entities.Interview, error) {
	var interviews []*entities.Interview
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&interviews).Error; err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return interviews, nil
}

// Update updates an interview
func (r *InterviewRepository) Update(ctx context.Context, interview *entities.Interview) error {
	if err := r.db.WithContext(ctx).Save(interview).Error; err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	return nil
}

// Delete removes an interview
func (r *InterviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Interview{}).Error; err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	return nil
}
