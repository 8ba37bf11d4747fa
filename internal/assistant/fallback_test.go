package assistant

import (
	"context"
	"strings"
	"testing"

	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackReply_KeywordRouting(t *testing.T) {
	tests := []struct {
		message  string
		fragment string
	}{
		{"What workout should I do today?", "workouts"},
		{"tell me about NUTRITION please", "Nutrition is key"},
		{"I have no motivation left", "stay motivated"},
		{"how do I lose weight", "Weight loss"},
		{"best way to build muscle?", "Building muscle"},
		{"is running good cardio", "heart health"},
		{"thank you so much", "very welcome"},
	}

	for _, tt := range tests {
		reply := FallbackReply(tt.message, nil)
		assert.Contains(t, reply, tt.fragment, "message: %q", tt.message)
	}
}

func TestFallbackReply_FirstMatchWins(t *testing.T) {
	// "workout" précède "motivation" dans l'ordre des règles
	reply := FallbackReply("I need motivation for my workout", nil)
	assert.Contains(t, reply, "workouts")
}

func TestFallbackReply_GreetingUsesName(t *testing.T) {
	user := &model.UserProfile{Name: "Alice"}
	reply := FallbackReply("hello", user)
	assert.Contains(t, reply, "Hello Alice")

	reply = FallbackReply("hello", nil)
	assert.Contains(t, reply, "Hello there")
}

func TestFallbackReply_GenericDefault(t *testing.T) {
	reply := FallbackReply("what is the meaning of life", nil)
	assert.Contains(t, reply, "interesting question")
	assert.NotEmpty(t, reply)
}

func TestFallbackReply_CaseInsensitive(t *testing.T) {
	lower := FallbackReply("workout", nil)
	upper := FallbackReply("WORKOUT", nil)
	assert.Equal(t, lower, upper)
}

func TestNewClient_DisabledWithoutKey(t *testing.T) {
	client := NewClient("", "gpt-3.5-turbo", true)
	assert.False(t, client.Enabled())

	client = NewClient("sk-test", "gpt-3.5-turbo", false)
	assert.False(t, client.Enabled())

	client = NewClient("sk-test", "gpt-3.5-turbo", true)
	assert.True(t, client.Enabled())
}

func TestConverse_DisabledClientErrors(t *testing.T) {
	client := NewClient("", "gpt-3.5-turbo", false)

	_, err := client.Converse(context.Background(), "hello", nil, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disabled"))
}
