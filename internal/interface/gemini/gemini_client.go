package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/domain/repository"
	"personalityai-service/pkg/logger"
	"personalityai-service/templates"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production generative-language endpoint
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Client implements the ScreeningClient interface against the Google
// generative-language API. One request per Analyze call, no retries.
type Client struct {
	http   *resty.Client
	apiKey string
	model  string
	logger logger.Logger
}

// NewClient creates a new classification client
func NewClient(baseURL, apiKey, model string, timeout time.Duration, log logger.Logger) repository.ScreeningClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		http:   httpClient,
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// analysisSchema constrains the model to the exact five-field result shape
func analysisSchema() *schema {
	stringArray := func(desc string) *schema {
		return &schema{
			Type:        "ARRAY",
			Items:       &schema{Type: "STRING"},
			Description: desc,
		}
	}

	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"summary":             {Type: "STRING"},
			"observedPatterns":    stringArray("Clinical patterns observed in the input text."),
			"potentialCategories": stringArray("Suggested personality disorder clusters or specific categories for professional discussion."),
			"recommendations":     stringArray("Actionable next steps for the patient."),
			"disclaimer":          {Type: "STRING"},
		},
		Required: []string{"summary", "observedPatterns", "potentialCategories", "recommendations", "disclaimer"},
	}
}

// Analyze sends the screening text to the model and parses the structured
// result. Every failure comes back as a tagged *entity.AnalysisError so the
// caller can distinguish transient conditions from broken responses.
func (c *Client) Analyze(ctx context.Context, input string) (*entity.ScreeningAnalysis, error) {
	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: templates.ScreeningPrompt(input)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema(),
		},
	}

	var respBody generateContentResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&respBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		c.logger.Error("Classification request failed", "model", c.model, "error", err)
		return nil, &entity.AnalysisError{Kind: entity.AnalysisTimeout, Err: err}
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		c.logger.Error("Classification request denied", "status", resp.StatusCode())
		return nil, &entity.AnalysisError{
			Kind: entity.AnalysisDenied,
			Err:  fmt.Errorf("service returned status %d", resp.StatusCode()),
		}
	}

	if !resp.IsSuccess() {
		return nil, &entity.AnalysisError{
			Kind: entity.AnalysisInvalidResponse,
			Err:  fmt.Errorf("service returned status %d", resp.StatusCode()),
		}
	}

	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return nil, &entity.AnalysisError{
			Kind: entity.AnalysisInvalidResponse,
			Err:  errors.New("response carried no candidates"),
		}
	}

	text := respBody.Candidates[0].Content.Parts[0].Text

	var analysis entity.ScreeningAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, &entity.AnalysisError{
			Kind: entity.AnalysisInvalidResponse,
			Err:  fmt.Errorf("failed to decode analysis: %w", err),
		}
	}

	if err := analysis.Validate(); err != nil {
		return nil, &entity.AnalysisError{
			Kind: entity.AnalysisInvalidResponse,
			Err:  fmt.Errorf("schema violation: %w", err),
		}
	}

	c.logger.Info("Classification completed",
		"model", c.model,
		"patterns", len(analysis.ObservedPatterns),
		"categories", len(analysis.PotentialCategories))

	return &analysis, nil
}
