package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 30 * time.Second
)

// Config holds the connection settings for the generative-language API.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	Temperature float64
}

// Client calls the Gemini generateContent endpoint over fasthttp. It is a
// plain pass-through: one request, one response, no retries or streaming.
type Client struct {
	cfg  Config
	http *fasthttp.Client
	log  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg: cfg,
		http: &fasthttp.Client{
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		log: logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.APIKey != ""
}

type part struct {
	Text string `json:"text"`
}

type turn struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *turn  `json:"system_instruction,omitempty"`
	Contents          []turn `json:"contents"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the conversation to the model and returns its reply text.
func (c *Client) Generate(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string) (string, error) {
	if !c.Configured() {
		return "", domain.NewError(domain.ErrCodeInternal, "advisor api key not configured")
	}

	body := generateRequest{
		SystemInstruction: &turn{Parts: []part{{Text: systemInstruction}}},
	}
	body.GenerationConfig.Temperature = c.cfg.Temperature
	for _, msg := range history {
		body.Contents = append(body.Contents, turn{
			Role:  string(msg.Role),
			Parts: []part{{Text: msg.Text}},
		})
	}
	body.Contents = append(body.Contents, turn{
		Role:  string(domain.ChatRoleUser),
		Parts: []part{{Text: message}},
	})

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)
	req.SetBody(payload)

	deadline := time.Now().Add(c.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "advisor request failed", err)
	}

	var out generateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "advisor response unreadable", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		msg := fmt.Sprintf("advisor responded %d", resp.StatusCode())
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		c.log.Warn("advisor api error",
			zap.Int("status", resp.StatusCode()),
			zap.String("message", msg))
		return "", domain.NewError(domain.ErrCodeInternal, msg)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", domain.NewError(domain.ErrCodeInternal, "advisor returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
