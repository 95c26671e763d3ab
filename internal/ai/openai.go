package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	openAIDefaultBaseURL = "https://api.openai.com/v1"
	openAIDefaultModel   = "dall-e-3"
)

// openAIProvider implements the Provider interface using the OpenAI
// image generation API (POST /v1/images/generations).
type openAIProvider struct {
	config ProviderConfig
	client *http.Client
}

// newOpenAI creates a new OpenAI provider.
func newOpenAI(cfg ProviderConfig) *openAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = openAIDefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = openAIDefaultModel
	}
	return &openAIProvider{
		config: cfg,
		// HD renders regularly take 20-40s; leave headroom.
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *openAIProvider) Name() string { return "openai" }

// GenerateImage requests params.N images and returns the first one's URL.
func (p *openAIProvider) GenerateImage(ctx context.Context, params ImageParams) (*GeneratedImage, error) {
	n := params.N
	if n < 1 {
		n = 1
	}

	body := openAIImageRequest{
		Model:   p.config.Model,
		Prompt:  params.Prompt,
		Size:    params.Size,
		Quality: params.Quality,
		Style:   params.Style,
		N:       n,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("openai image marshal: %w", err)
	}

	url := p.config.BaseURL + "/images/generations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("openai image request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai image http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai image read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Provider: p.Name(), StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result openAIImageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: openai image unmarshal: %v", ErrMalformedResponse, err)
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("%w: openai image: no images returned", ErrMalformedResponse)
	}

	first := result.Data[0]
	if strings.TrimSpace(first.URL) == "" {
		return nil, fmt.Errorf("%w: openai image: no url in first image", ErrMalformedResponse)
	}

	return &GeneratedImage{
		URL:           first.URL,
		RevisedPrompt: first.RevisedPrompt,
	}, nil
}

// --- OpenAI image request/response types ---

type openAIImageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
	Style   string `json:"style,omitempty"`
	N       int    `json:"n"`
}

type openAIImageResponse struct {
	Created int64             `json:"created"`
	Data    []openAIImageData `json:"data"`
}

type openAIImageData struct {
	URL           string `json:"url"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}
