package ai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	oneHour             = 60 * 60
	responseCacheExpire = oneHour * 6
	defaultTimeout      = 60 * time.Second
	defaultBurst        = 2
	maxErrorBodyLen     = 512
)

var (
	ErrBlocked       = errors.New("response blocked by safety settings")
	ErrEmptyResponse = errors.New("AI returned an empty response")
)

type GeminiParams struct {
	BaseURL           string
	APIKey            string
	Model             string
	RequestsPerSecond float64
	CacheSizeMB       int
	HTTPClient        *http.Client
}

// GeminiClient calls the generateContent REST endpoint. Identical JSON
// prompts are answered from a local cache; free text is always generated
// anew. Requests are never retried.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *freecache.Cache
}

func NewGeminiClient(p GeminiParams) *GeminiClient {
	if p.BaseURL == "" {
		p.BaseURL = DefaultBaseURL
	}
	if p.Model == "" {
		p.Model = schedule.DefaultTextModel
	}
	if p.RequestsPerSecond <= 0 {
		p.RequestsPerSecond = 1
	}
	if p.CacheSizeMB <= 0 {
		p.CacheSizeMB = 10
	}
	if p.HTTPClient == nil {
		p.HTTPClient = &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	megabyte := 1024 * 1024
	return &GeminiClient{
		baseURL:    strings.TrimSuffix(p.BaseURL, "/"),
		apiKey:     p.APIKey,
		model:      p.Model,
		httpClient: p.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(p.RequestsPerSecond), defaultBurst),
		cache:      freecache.NewCache(p.CacheSizeMB * megabyte),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string, wantsJSON bool) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.gemini.generateText")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var cacheKey []byte
	if wantsJSON {
		cacheKey = g.cacheKey(prompt)
		if cached, err := g.cache.Get(cacheKey); err == nil {
			log.Tracef("ai: serving cached response for prompt %s", cacheKey[:12])
			return string(cached), nil
		}
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	reqBody := generateRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	if wantsJSON {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// drop the url, it carries the api key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body := string(respBytes)
		if len(body) > maxErrorBodyLen {
			body = body[:maxErrorBodyLen]
		}
		return "", fmt.Errorf("gemini api status %d: %s", resp.StatusCode, body)
	}

	text, err := parseGenerateResponse(respBytes)
	if err != nil {
		return "", err
	}

	if cacheKey != nil {
		if err := g.cache.Set(cacheKey, []byte(text), responseCacheExpire); err != nil {
			log.Errorf("ai: cache response: %s", err)
		}
	}
	return text, nil
}

func parseGenerateResponse(respBytes []byte) (string, error) {
	var gr generateResponse
	if err := json.Unmarshal(respBytes, &gr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if gr.PromptFeedback != nil && gr.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, gr.PromptFeedback.BlockReason)
	}
	if len(gr.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	c := gr.Candidates[0]
	if c.FinishReason == "SAFETY" {
		return "", fmt.Errorf("%w: finish reason %s", ErrBlocked, c.FinishReason)
	}
	var sb strings.Builder
	for _, p := range c.Content.Parts {
		sb.WriteString(p.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func (g *GeminiClient) cacheKey(prompt string) []byte {
	h := sha256.New()
	h.Write([]byte(g.model))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	sum := h.Sum(nil)
	return []byte(hex.EncodeToString(sum))
}
