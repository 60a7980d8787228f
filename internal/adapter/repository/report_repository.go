package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/interview-coach-team/interview-analyzer/errors"
	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

// ReportRepository implements the session report repository interface using GORM
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new session report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Create creates a new session report
func (r *ReportRepository) Create(ctx context.Context, report *entities.SessionReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	return nil
}

// FindByID finds a session report by ID
func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.SessionReport, error) {
	var report entities.SessionReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrReportNotFound
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return &report, nil
}

// FindByInterviewID lists all reports for an interview, newest first
func (r *ReportRepository) FindByInterviewID(ctx context.Context, interviewID uuid.UUID) ([]*entities.SessionReport, error) {
	var reports []*entities.SessionReport
	if err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return reports, nil
}

// FindLatestByInterviewID returns the most recent report for an
// interview, or nil when the interview has not been analyzed yet.
func (r *ReportRepository) FindLatestByInterviewID(ctx context.Context, interviewID uuid.UUID) (*entities.SessionReport, error) {
	var report entities.SessionReport
	if err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at DESC").
		First(&report).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return &report, nil
}
