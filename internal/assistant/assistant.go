// Package assistant relaie la conversation vers l'endpoint de complétion et
// retombe sur un répondeur local à base de mots-clés quand l'endpoint est
// indisponible ou désactivé.
package assistant

import (
	"context"
	"fmt"

	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/sashabaranov/go-openai"
)

// historyWindow nombre de messages d'historique envoyés avec chaque requête
const historyWindow = 10

type Client struct {
	api     *openai.Client
	model   string
	enabled bool
}

// NewClient construit l'adaptateur. Sans clé API (ou avec enabled=false),
// seul le répondeur local tourne: aucun appel réseau n'est tenté.
func NewClient(apiKey, modelName string, enabled bool) *Client {
	c := &Client{model: modelName, enabled: enabled && apiKey != ""}
	if c.enabled {
		c.api = openai.NewClient(apiKey)
	}
	return c
}

// Enabled indique si le chemin réseau est actif
func (c *Client) Enabled() bool {
	return c.enabled
}

// Converse envoie le persona, les 10 derniers messages de l'historique et le
// nouveau message à l'endpoint de complétion. Toute erreur de transport, de
// statut ou de format doit être rattrapée par l'appelant via FallbackReply.
func (c *Client) Converse(ctx context.Context, message string, user *model.UserProfile, history []model.ChatMessage) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("assistant API disabled")
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: buildPersona(user)},
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Role == model.ChatRoleUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   800,
		Temperature: 0.7,
		TopP:        1,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("invalid response format from completion endpoint")
	}

	return resp.Choices[0].Message.Content, nil
}

func buildPersona(user *model.UserProfile) string {
	name := "a user"
	context := "New user"
	if user != nil && user.Name != "" {
		name = user.Name
		context = "Name: " + user.Name
	}

	return fmt.Sprintf(`You are an AI fitness assistant helping %s with their fitness journey.

Your role is to provide personalized, helpful, and safe fitness advice. You can help with:
- Workout plans and exercise recommendations
- Nutrition advice and meal planning
- Motivation and goal setting
- Fitness tracking tips
- General health and wellness guidance

Important guidelines:
- Always prioritize safety and recommend consulting healthcare professionals for medical advice
- Provide practical, actionable advice
- Be encouraging and supportive
- Consider the user's fitness level and goals
- Keep responses concise but informative
- Use emojis to make responses friendly and engaging
- Format responses with bullet points and clear structure

User context: %s`, name, context)
}
