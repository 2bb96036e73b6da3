package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"hirepilot/internal/apperr"
	"hirepilot/internal/models"
	"hirepilot/internal/services"
)

type CVHandler struct {
	validator      services.FileValidator
	storageService services.StorageService
	extractor      services.ExtractorService
}

func NewCVHandler(
	validator services.FileValidator,
	storageService services.StorageService,
	extractor services.ExtractorService,
) *CVHandler {
	return &CVHandler{
		validator:      validator,
		storageService: storageService,
		extractor:      extractor,
	}
}

// HandleSave handles POST /cvs/save
func (h *CVHandler) HandleSave(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeFileRequired, "no file provided", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, "failed to open uploaded file", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, "failed to read uploaded file", err))
	}

	file := &services.UploadedFile{
		Data:     data,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Name:     fileHeader.Filename,
	}

	// Validation happens before any store call; a rejected file never
	// reaches the bucket.
	if err := h.validator.Validate(file); err != nil {
		return respondError(c, err)
	}

	key, err := h.storageService.Upload(c.Context(), file)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SaveCVResponse{
		Message: "File uploaded",
		Key:     key,
	})
}

// HandleExtract handles POST /cvs/extract
func (h *CVHandler) HandleExtract(c *fiber.Ctx) error {
	var req models.ExtractRequest

	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, "invalid request payload", err))
	}

	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, "fileId is required", err))
	}

	result, err := h.extractor.Extract(c.Context(), req.FileID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
