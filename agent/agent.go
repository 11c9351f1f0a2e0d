// Package agent wraps a Gemini chat that explains fund reports in plain
// language.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const analystInstruction = `You are the analyst of a small private fund.
You receive the fund's current report as a markdown document and answer
questions about it for investors who are not finance professionals.
Be brief, use the figures from the report, and never invent numbers.`

// Analyst is a chat with the fund analyst persona.
type Analyst struct {
	ModelName string
	chat      *genai.Chat
}

// NewAnalyst returns an Analyst using the given model, or a sensible
// default when empty.
func NewAnalyst(model string) *Analyst {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Analyst{ModelName: model}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: analystInstruction}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends the report and question to the analyst and returns the reply
// text.
func (a *Analyst) Ask(ctx context.Context, report, question string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("analyst session not started")
	}
	prompt := fmt.Sprintf("Current fund report:\n\n%s\n\nQuestion: %s", report, question)
	resp, err := a.chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
