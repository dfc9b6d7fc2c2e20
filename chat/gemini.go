package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// Gemini generates replies with a Gemini chat session.
type Gemini struct {
	model *genai.GenerativeModel
}

// NewGemini wraps a model of client.
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{model: client.GenerativeModel(model)}
}

// Reply replays the history into a fresh chat session and sends the new message.
func (g *Gemini) Reply(ctx context.Context, req Request) (string, error) {
	model := *g.model
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	cs := model.StartChat()
	cs.History = toContents(req.History)

	resp, err := cs.SendMessage(ctx, genai.Text(req.Message))
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	return responseText(resp)
}

func toContents(history []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		out = append(out, &genai.Content{
			Role:  string(m.Role),
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}
	return out
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("response has no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
