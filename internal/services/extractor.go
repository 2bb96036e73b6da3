package services

import (
	"context"
	"fmt"
	"log"

	"hirepilot/internal/models"
)

const extractionSystemPrompt = "You are a CV parsing assistant. You answer with a single JSON object and nothing else."

// ExtractorService runs the extract flow for a stored CV: fetch bytes,
// extract text, build the prompt, call the model and recover the JSON reply.
// Steps run in strict sequence; the first failure aborts the rest.
type ExtractorService interface {
	Extract(ctx context.Context, key string) (*models.ExtractionResult, error)
}

type extractorService struct {
	storage       StorageService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	llm           LLMService
}

func NewExtractorService(
	storage StorageService,
	pdfParser PDFParserService,
	llm LLMService,
) ExtractorService {
	return &extractorService{
		storage:       storage,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		llm:           llm,
	}
}

// Extract implements ExtractorService.
func (e *extractorService) Extract(ctx context.Context, key string) (*models.ExtractionResult, error) {
	data, err := e.storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stored CV: %w", err)
	}

	text, err := e.pdfParser.ExtractText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV: %w", err)
	}

	log.Printf("📄 Extracted %d characters of CV text for key %s", len(text), key)

	prompt := e.promptBuilder.BuildExtractionPrompt(text)

	response, err := e.llm.Chat(ctx, []ChatMessage{
		{Role: RoleSystem, Content: extractionSystemPrompt},
		{Role: RoleUser, Content: prompt},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to extract CV data: %w", err)
	}

	var result models.ExtractionResult
	if err := RecoverJSON(response, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
