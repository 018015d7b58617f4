package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// FailureResponse is returned in place of a model reply when the LLM backend
// is unreachable. It is a data value, not an error: the parser runs over it
// without crashing and yields a zero score, so a backend outage degrades the
// grade instead of failing the request.
const FailureResponse = "เกิดข้อผิดพลาดในการประมวลผล ไม่สามารถเชื่อมต่อกับระบบตรวจข้อสอบได้"

// Generation parameters for the grading path: low temperature for
// determinism-leaning output, streaming disabled.
const (
	temperature = 0.1
	maxTokens   = 2048
	topP        = 0.95
)

// LLMGrader grades submissions by calling an OpenAI-compatible chat
// completion endpoint (LM Studio, Ollama, vLLM, etc.).
type LLMGrader struct {
	url    string // e.g. "http://localhost:1234"
	model  string // e.g. "qwen3-8b"
	client *http.Client
	logger *slog.Logger
}

// Compile-time check: *LLMGrader satisfies the Grader interface.
var _ Grader = (*LLMGrader)(nil)

// NewLLMGrader creates a grader that calls the given LLM endpoint.
func NewLLMGrader(url, model string, logger *slog.Logger) *LLMGrader {
	return &LLMGrader{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

// Grade builds the grading prompt, sends it as one single-turn completion,
// and returns the raw response text. On any transport error or non-success
// status it returns FailureResponse.
func (g *LLMGrader) Grade(ctx context.Context, solutionText, submissionText string, maxScore float64) string {
	prompt := BuildGradingPrompt(solutionText, submissionText, maxScore)

	response, err := g.complete(ctx, systemInstruction, prompt)
	if err != nil {
		g.logger.Error("LLM backend unavailable, returning failure response", "error", err)
		return FailureResponse
	}
	return response
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens"`
	TopP        float64      `json:"top_p"`
	Stream      bool         `json:"stream"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends a single chat-completion request and returns the raw text.
func (g *LLMGrader) complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
		Stream:      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}
