package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hirepilot/internal/models"
	"hirepilot/internal/repositories"
)

const emailSystemPrompt = "You are an assistant that drafts outreach emails for recruiters. You answer with the email text only."

// emailTemperature is higher than the extraction default: outreach emails
// should not read identically for every candidate.
var emailTemperature float32 = 0.7

// EmailService persists a reviewed candidate profile and generates an
// outreach email for it.
type EmailService interface {
	GenerateEmail(ctx context.Context, req *models.GenerateEmailRequest) (*models.Candidate, string, error)
}

type emailService struct {
	candidateRepo repositories.CandidateRepository
	promptBuilder *PromptBuilder
	llm           LLMService
}

func NewEmailService(
	candidateRepo repositories.CandidateRepository,
	llm LLMService,
) EmailService {
	return &emailService{
		candidateRepo: candidateRepo,
		promptBuilder: NewPromptBuilder(),
		llm:           llm,
	}
}

// GenerateEmail implements EmailService. The candidate row is created before
// the model call so a failed generation can be retried against an existing
// record.
func (s *emailService) GenerateEmail(ctx context.Context, req *models.GenerateEmailRequest) (*models.Candidate, string, error) {
	candidate := candidateFromRequest(req)

	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, "", fmt.Errorf("failed to save candidate: %w", err)
	}

	prompt := s.promptBuilder.BuildEmailPrompt(req)

	email, err := s.llm.Chat(ctx, []ChatMessage{
		{Role: RoleSystem, Content: emailSystemPrompt},
		{Role: RoleUser, Content: prompt},
	}, &ChatOptions{Temperature: &emailTemperature})
	if err != nil {
		return candidate, "", fmt.Errorf("failed to generate email: %w", err)
	}

	email = strings.TrimSpace(email)

	if email != "" {
		if err := s.candidateRepo.UpdateGeneratedEmail(candidate.ID, email); err != nil {
			return candidate, "", err
		}
		candidate.GeneratedEmail = &email
	}

	return candidate, email, nil
}

func candidateFromRequest(req *models.GenerateEmailRequest) *models.Candidate {
	return &models.Candidate{
		ID:                    uuid.New(),
		CandidateName:         req.CandidateName,
		EmploymentStatus:      req.EmploymentStatus,
		CurrentEmployer:       req.CurrentEmployer,
		CurrentPosition:       req.CurrentPosition,
		Age:                   req.Age,
		Location:              req.Location,
		RecruiterName:         req.RecruiterName,
		ContactName:           req.ContactName,
		HardSkills:            req.HardSkills,
		ExperienceDescription: req.ExperienceDescription,
		YearsOfExperience:     req.YearsOfExperience,
		GraduationStatus:      req.GraduationStatus,
		Degree:                req.Degree,
		TargetRoles:           req.TargetRoles,
		Ambitions:             req.Ambitions,
		TravelMode:            req.TravelMode,
		MinutesOfRoad:         req.MinutesOfRoad,
		OnSiteDays:            req.OnSiteDays,
		GrossSalary:           req.GrossSalary,
		SalaryPeriod:          req.SalaryPeriod,
		HoursAWeek:            req.HoursAWeek,
		JobDescriptionText:    req.JobDescriptionText,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}
}
