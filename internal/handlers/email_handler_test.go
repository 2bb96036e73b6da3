package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirepilot/internal/apperr"
	"hirepilot/internal/models"
)

type fakeEmailService struct {
	candidate *models.Candidate
	email     string
	err       error
	lastReq   *models.GenerateEmailRequest
}

func (f *fakeEmailService) GenerateEmail(_ context.Context, req *models.GenerateEmailRequest) (*models.Candidate, string, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, "", f.err
	}
	return f.candidate, f.email, nil
}

func newEmailTestApp(svc *fakeEmailService) *fiber.App {
	app := fiber.New()
	app.Post("/emails/generate", NewEmailHandler(svc).HandleGenerate)
	return app
}

func TestHandleGenerate_Success(t *testing.T) {
	svc := &fakeEmailService{
		candidate: &models.Candidate{ID: uuid.New(), CandidateName: "Jane Doe"},
		email:     "Hi Jane, ...",
	}
	app := newEmailTestApp(svc)

	payload := `{
		"candidateName": "Jane Doe",
		"recruiterName": "Sam Recruiter",
		"hardSkills": ["Go", "PostgreSQL"],
		"yearsOfExperience": 8,
		"salaryPeriod": "year",
		"hoursAWeek": 40
	}`

	req := httptest.NewRequest(http.MethodPost, "/emails/generate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got models.GenerateEmailResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, svc.candidate.ID.String(), got.CandidateID)
	assert.Equal(t, "Hi Jane, ...", got.Email)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, svc.lastReq.HardSkills)
}

func TestHandleGenerate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "missing candidateName",
			payload: `{"recruiterName": "Sam Recruiter"}`,
		},
		{
			name:    "missing recruiterName",
			payload: `{"candidateName": "Jane Doe"}`,
		},
		{
			name:    "bad salaryPeriod",
			payload: `{"candidateName": "Jane Doe", "recruiterName": "Sam", "salaryPeriod": "week"}`,
		},
		{
			name:    "bad hoursAWeek",
			payload: `{"candidateName": "Jane Doe", "recruiterName": "Sam", "hoursAWeek": 37}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newEmailTestApp(&fakeEmailService{})

			req := httptest.NewRequest(http.MethodPost, "/emails/generate", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, string(apperr.CodeInvalidRequest), decodeError(t, resp).Code)
		})
	}
}

func TestHandleGenerate_UpstreamFailure(t *testing.T) {
	svc := &fakeEmailService{err: apperr.New(apperr.CodeUpstreamError, "extraction service request failed")}
	app := newEmailTestApp(svc)

	payload := `{"candidateName": "Jane Doe", "recruiterName": "Sam Recruiter"}`
	req := httptest.NewRequest(http.MethodPost, "/emails/generate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, string(apperr.CodeUpstreamError), decodeError(t, resp).Code)
}
