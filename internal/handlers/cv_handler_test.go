package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirepilot/internal/apperr"
	"hirepilot/internal/models"
	"hirepilot/internal/services"
)

type fakeStorage struct {
	key string
	err error
}

func (f *fakeStorage) Upload(_ context.Context, _ *services.UploadedFile) (string, error) {
	return f.key, f.err
}

func (f *fakeStorage) Download(_ context.Context, _ string) ([]byte, error) {
	return nil, f.err
}

type fakeExtractor struct {
	result *models.ExtractionResult
	err    error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (*models.ExtractionResult, error) {
	return f.result, f.err
}

func newCVTestApp(storage services.StorageService, extractor services.ExtractorService, maxSize int64) *fiber.App {
	validator := services.NewFileValidator([]string{"application/pdf"}, maxSize)
	handler := NewCVHandler(validator, storage, extractor)

	app := fiber.New(fiber.Config{BodyLimit: 64 * 1024 * 1024})
	app.Post("/cvs/save", handler.HandleSave)
	app.Post("/cvs/extract", handler.HandleExtract)
	return app
}

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func decodeError(t *testing.T, resp *http.Response) models.ErrorResponse {
	t.Helper()

	var errResp models.ErrorResponse
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &errResp))
	return errResp
}

func TestHandleSave_Success(t *testing.T) {
	app := newCVTestApp(&fakeStorage{key: "1700000000000-cv.pdf"}, &fakeExtractor{}, 10*1024*1024)

	body, contentType := multipartUpload(t, "file", "cv.pdf", "application/pdf", bytes.Repeat([]byte("a"), 1024))
	req := httptest.NewRequest(http.MethodPost, "/cvs/save", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var saved models.SaveCVResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.Equal(t, "File uploaded", saved.Message)
	assert.NotEmpty(t, saved.Key)
}

func TestHandleSave_MissingFile(t *testing.T) {
	app := newCVTestApp(&fakeStorage{}, &fakeExtractor{}, 10*1024*1024)

	req := httptest.NewRequest(http.MethodPost, "/cvs/save", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=empty")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, string(apperr.CodeFileRequired), decodeError(t, resp).Code)
}

func TestHandleSave_InvalidType(t *testing.T) {
	app := newCVTestApp(&fakeStorage{}, &fakeExtractor{}, 10*1024*1024)

	body, contentType := multipartUpload(t, "file", "cv.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/cvs/save", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, string(apperr.CodeInvalidFileType), decodeError(t, resp).Code)
}

func TestHandleSave_FileTooLarge(t *testing.T) {
	// 10 MB limit, 11 MB upload.
	app := newCVTestApp(&fakeStorage{}, &fakeExtractor{}, 10*1024*1024)

	body, contentType := multipartUpload(t, "file", "cv.pdf", "application/pdf",
		bytes.Repeat([]byte("a"), 11*1024*1024))
	req := httptest.NewRequest(http.MethodPost, "/cvs/save", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, string(apperr.CodeFileTooLarge), decodeError(t, resp).Code)
}

func TestHandleSave_StorageFailure(t *testing.T) {
	app := newCVTestApp(&fakeStorage{err: apperr.New(apperr.CodeStorageFailure, "failed to store file")},
		&fakeExtractor{}, 10*1024*1024)

	body, contentType := multipartUpload(t, "file", "cv.pdf", "application/pdf", []byte("%PDF-"))
	req := httptest.NewRequest(http.MethodPost, "/cvs/save", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, string(apperr.CodeStorageFailure), decodeError(t, resp).Code)
}

func TestHandleExtract_Success(t *testing.T) {
	extractor := &fakeExtractor{result: &models.ExtractionResult{
		Name:              "Jane Doe",
		HardSkills:        []string{"Go"},
		YearsOfExperience: 8,
	}}
	app := newCVTestApp(&fakeStorage{}, extractor, 10*1024*1024)

	req := httptest.NewRequest(http.MethodPost, "/cvs/extract",
		strings.NewReader(`{"fileId":"1700000000000-cv.pdf"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result models.ExtractionResult
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "Jane Doe", result.Name)
}

func TestHandleExtract_MissingFileID(t *testing.T) {
	app := newCVTestApp(&fakeStorage{}, &fakeExtractor{}, 10*1024*1024)

	req := httptest.NewRequest(http.MethodPost, "/cvs/extract", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, string(apperr.CodeInvalidRequest), decodeError(t, resp).Code)
}

func TestHandleExtract_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apperr.Code
	}{
		{
			name:       "unknown key",
			err:        apperr.New(apperr.CodeFileNotFound, "no stored file for key"),
			wantStatus: fiber.StatusNotFound,
			wantCode:   apperr.CodeFileNotFound,
		},
		{
			name:       "corrupted bytes",
			err:        apperr.New(apperr.CodeFileUnreadable, "could not extract text from file"),
			wantStatus: fiber.StatusUnprocessableEntity,
			wantCode:   apperr.CodeFileUnreadable,
		},
		{
			name:       "upstream failure",
			err:        apperr.New(apperr.CodeUpstreamError, "extraction service request failed: quota exceeded"),
			wantStatus: fiber.StatusBadGateway,
			wantCode:   apperr.CodeUpstreamError,
		},
		{
			name:       "unparsable reply",
			err:        apperr.New(apperr.CodeParseFailure, "Failed to parse extraction response as JSON"),
			wantStatus: fiber.StatusBadGateway,
			wantCode:   apperr.CodeParseFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newCVTestApp(&fakeStorage{}, &fakeExtractor{err: tt.err}, 10*1024*1024)

			req := httptest.NewRequest(http.MethodPost, "/cvs/extract",
				strings.NewReader(`{"fileId":"some-key"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			errResp := decodeError(t, resp)
			assert.Equal(t, string(tt.wantCode), errResp.Code)
			assert.NotEmpty(t, errResp.Error)
		})
	}
}
