package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/config"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"google.golang.org/api/option"
)

// SummaryService turns one student's nominations into a short narrative for
// the teacher. Two backends: an operator-configured webhook (POST JSON,
// receive text) or the Gemini API directly when only an API key is set.
// A failed call is surfaced to the caller; stored data is never touched.
type SummaryService interface {
	Summarize(payload dto.SummaryPayloadDTO) (string, error)
}

// NewSummaryService picks the backend from config. The webhook takes
// precedence when both are configured.
func NewSummaryService(cfg *config.Config) (SummaryService, error) {
	if cfg.SummaryWebhookURL != "" {
		return NewWebhookSummaryService(cfg.SummaryWebhookURL), nil
	}
	if cfg.GeminiApiKey != "" {
		return NewGeminiSummaryService(cfg)
	}
	log.Warn().Msg("Neither SUMMARY_WEBHOOK_URL nor GEMINI_API_KEY is set; AI summaries are disabled.")
	return &disabledSummaryService{}, nil
}

type disabledSummaryService struct{}

func (s *disabledSummaryService) Summarize(dto.SummaryPayloadDTO) (string, error) {
	return "", fmt.Errorf("summary generation is not configured")
}

// --- Webhook backend ---

type webhookSummaryService struct {
	url    string
	client *http.Client
}

func NewWebhookSummaryService(url string) SummaryService {
	return &webhookSummaryService{
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *webhookSummaryService) Summarize(payload dto.SummaryPayloadDTO) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding summary payload: %w", err)
	}

	resp, err := s.client.Post(s.url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("url", s.url).Msg("Summary webhook call failed")
		return "", fmt.Errorf("calling summary webhook: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading summary webhook response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Str("url", s.url).Msg("Summary webhook returned non-success status")
		return "", fmt.Errorf("summary webhook returned status %d", resp.StatusCode)
	}
	return strings.TrimSpace(string(text)), nil
}

// --- Gemini backend ---

type geminiSummaryService struct {
	model *genai.GenerativeModel
}

func NewGeminiSummaryService(cfg *config.Config) (SummaryService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiSummaryService{model: client.GenerativeModel("gemini-1.5-flash")}, nil
}

func (s *geminiSummaryService) Summarize(payload dto.SummaryPayloadDTO) (string, error) {
	ctx := context.Background()

	var prompt strings.Builder
	prompt.WriteString("You are a school counselor reviewing a classroom sociometric survey.\n")
	prompt.WriteString("Write a short, neutral summary (3-5 sentences) of the following student's peer nominations for their teacher.\n")
	prompt.WriteString("A negative weight marks an unfavorable prompt, a positive weight a favorable one.\n\n")
	fmt.Fprintf(&prompt, "Student: %s", payload.Student.Name)
	if payload.Student.StudentNumber != nil {
		fmt.Fprintf(&prompt, " (no. %d)", *payload.Student.StudentNumber)
	}
	fmt.Fprintf(&prompt, "\nClassroom: %s, grade %d, class %d\n\nNominations:\n",
		payload.Classroom.SchoolName, payload.Classroom.Grade, payload.Classroom.ClassNumber)
	for _, item := range payload.Responses {
		fmt.Fprintf(&prompt, "- %q (weight %+d) -> %s\n", item.QuestionText, item.Weight, item.TargetStudent.Name)
	}
	if len(payload.Responses) == 0 {
		prompt.WriteString("- no responses recorded\n")
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during summary generation")
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return strings.TrimSpace(text.String()), nil
}
