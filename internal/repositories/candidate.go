package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirepilot/internal/apperr"
	"hirepilot/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	FindAll(limit, offset int) ([]models.Candidate, error)
	UpdateGeneratedEmail(id uuid.UUID, email string) error
	Delete(id uuid.UUID) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.Wrap(apperr.CodeNotFound, "candidate not found", err)
		}

		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

// FindAll implements CandidateRepository.
func (r *candidateRepository) FindAll(limit, offset int) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&candidates).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}

// UpdateGeneratedEmail implements CandidateRepository.
func (r *candidateRepository) UpdateGeneratedEmail(id uuid.UUID, email string) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Update("generated_email", email)

	if result.Error != nil {
		return fmt.Errorf("failed to update generated email: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "candidate not found")
	}

	return nil
}

// Delete implements CandidateRepository.
func (r *candidateRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Candidate{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete candidate: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "candidate not found")
	}

	return nil
}
