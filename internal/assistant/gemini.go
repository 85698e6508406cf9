package assistant

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient sends completions to Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient is the constructor for the Gemini client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// assistantContextPrefix labels assistant context folded into the system instruction.
const assistantContextPrefix = "Earlier assistant reply: "

// Complete maps the messages onto a Gemini chat session with geminiTurns and
// sends the final user turn.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message) (*CompletionResponse, error) {
	system, history, send := geminiTurns(messages)
	if len(send) == 0 {
		return nil, fmt.Errorf("gemini: no user message to send")
	}

	// The system instruction is set on the handle, so each call gets its own.
	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = system

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, send...)
	if err != nil {
		return nil, fmt.Errorf("gemini api error: %w", err)
	}

	out := &CompletionResponse{Model: c.model}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				out.Content = append(out.Content, ContentBlock{Type: ContentTypeText, Text: string(t)})
			}
		}
	}
	return out, nil
}

// geminiTurns splits role-tagged messages into Gemini's chat shape. History
// must open with a user turn and alternate roles, so assistant messages before
// the first user turn join the system instruction, runs of one role merge into
// one turn, and the trailing user turn is returned as the parts to send.
func geminiTurns(messages []Message) (system *genai.Content, history []*genai.Content, send []genai.Part) {
	var instruction []genai.Part
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			instruction = append(instruction, genai.Text(m.Content))
		case RoleAssistant:
			if len(history) == 0 {
				instruction = append(instruction, genai.Text(assistantContextPrefix+m.Content))
				continue
			}
			history = appendTurn(history, "model", m.Content)
		default:
			history = appendTurn(history, "user", m.Content)
		}
	}

	if n := len(history); n > 0 && history[n-1].Role == "user" {
		send = history[n-1].Parts
		history = history[:n-1]
	}
	if len(instruction) > 0 {
		system = &genai.Content{Parts: instruction}
	}
	return system, history, send
}

func appendTurn(history []*genai.Content, role, text string) []*genai.Content {
	if n := len(history); n > 0 && history[n-1].Role == role {
		history[n-1].Parts = append(history[n-1].Parts, genai.Text(text))
		return history
	}
	return append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(text)}})
}
