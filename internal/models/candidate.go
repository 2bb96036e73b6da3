package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is the persisted recruiter-reviewed profile. Slice fields are
// stored as JSON columns via gorm's built-in serializer.
type Candidate struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateName         string    `gorm:"type:text;not null" json:"candidate_name"`
	EmploymentStatus      bool      `gorm:"default:false" json:"employment_status"`
	CurrentEmployer       *string   `gorm:"type:text" json:"current_employer,omitempty"`
	CurrentPosition       *string   `gorm:"type:text" json:"current_position,omitempty"`
	Age                   int       `json:"age"`
	Location              string    `gorm:"type:text" json:"location"`
	RecruiterName         string    `gorm:"type:text" json:"recruiter_name"`
	ContactName           string    `gorm:"type:text" json:"contact_name"`
	HardSkills            []string  `gorm:"serializer:json" json:"hard_skills"`
	ExperienceDescription string    `gorm:"type:text" json:"experience_description"`
	YearsOfExperience     int       `json:"years_of_experience"`
	GraduationStatus      bool      `gorm:"default:false" json:"graduation_status"`
	Degree                *string   `gorm:"type:text" json:"degree,omitempty"`
	TargetRoles           []string  `gorm:"serializer:json" json:"target_roles"`
	Ambitions             *string   `gorm:"type:text" json:"ambitions,omitempty"`
	TravelMode            *string   `gorm:"type:text" json:"travel_mode,omitempty"`
	MinutesOfRoad         []int     `gorm:"serializer:json" json:"minutes_of_road"`
	OnSiteDays            []int     `gorm:"serializer:json" json:"on_site_days"`
	GrossSalary           int       `json:"gross_salary"`
	SalaryPeriod          string    `gorm:"type:text" json:"salary_period"`
	HoursAWeek            int       `json:"hours_a_week"`
	JobDescriptionText    *string   `gorm:"type:text" json:"job_description_text,omitempty"`
	GeneratedEmail        *string   `gorm:"type:text" json:"generated_email,omitempty"`
	CreatedAt             time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt             time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}
