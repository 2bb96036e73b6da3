package services

import (
	"fmt"
	"strings"

	"hirepilot/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildExtractionPrompt creates the CV field-extraction prompt. Same CV text
// always produces the same prompt, so extraction results are reproducible.
func (pb *PromptBuilder) BuildExtractionPrompt(cvText string) string {
	return fmt.Sprintf(`You are an assistant for recruiters. Extract structured candidate data from the CV text below.

CV TEXT:
%s

Extract the following fields. If a field cannot be determined from the CV, use an empty string, 0, or an empty list as appropriate.

Return ONLY a JSON object in exactly this shape, with no explanation or surrounding text:
{
  "name": "<full name of the candidate>",
  "currentEmployer": "<current employer, or most recent if unemployed>",
  "currentPosition": "<current or most recent job title>",
  "age": <age in years as a number, 0 if unknown>,
  "location": "<city or region where the candidate lives>",
  "hardSkills": ["<skill>", "..."],
  "experienceDescription": "<2-4 sentence summary of the candidate's work experience>",
  "yearsOfExperience": <total years of professional experience as a number>,
  "degree": "<highest degree obtained, including field of study>"
}`, cvText)
}

// BuildEmailPrompt creates the outreach-email prompt from a reviewed
// candidate profile.
func (pb *PromptBuilder) BuildEmailPrompt(req *models.GenerateEmailRequest) string {
	var details strings.Builder

	fmt.Fprintf(&details, "Candidate name: %s\n", req.CandidateName)
	if req.CurrentPosition != nil && *req.CurrentPosition != "" {
		fmt.Fprintf(&details, "Current position: %s\n", *req.CurrentPosition)
	}
	if req.CurrentEmployer != nil && *req.CurrentEmployer != "" {
		fmt.Fprintf(&details, "Current employer: %s\n", *req.CurrentEmployer)
	}
	if req.Location != "" {
		fmt.Fprintf(&details, "Location: %s\n", req.Location)
	}
	if len(req.HardSkills) > 0 {
		fmt.Fprintf(&details, "Hard skills: %s\n", strings.Join(req.HardSkills, ", "))
	}
	if req.ExperienceDescription != "" {
		fmt.Fprintf(&details, "Experience: %s\n", req.ExperienceDescription)
	}
	fmt.Fprintf(&details, "Years of experience: %d\n", req.YearsOfExperience)
	if len(req.TargetRoles) > 0 {
		fmt.Fprintf(&details, "Target roles: %s\n", strings.Join(req.TargetRoles, ", "))
	}
	if req.Ambitions != nil && *req.Ambitions != "" {
		fmt.Fprintf(&details, "Ambitions: %s\n", *req.Ambitions)
	}
	if req.JobDescriptionText != nil && *req.JobDescriptionText != "" {
		fmt.Fprintf(&details, "Job description to pitch:\n%s\n", *req.JobDescriptionText)
	}

	return fmt.Sprintf(`You are writing on behalf of recruiter %s. Draft a short, friendly outreach email to %s about a role that matches their profile.

CANDIDATE PROFILE:
%s
Guidelines:
- Address the candidate by name and sign off as the recruiter.
- Reference one or two concrete points from the profile.
- Keep it under 200 words and end with a clear call to action.

Return ONLY the email text, no subject line, no JSON and no explanation.`,
		req.RecruiterName, req.CandidateName, details.String())
}
