package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"modelarena/internal/config"
	apperrors "modelarena/internal/errors"
	"modelarena/internal/llm"
	mock_llm "modelarena/internal/llm/mocks"
	"modelarena/internal/model"
	"modelarena/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		UpstreamAPIKey: "test-key",
		DefaultModel:   "openai/gpt-4o-mini",
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestChatService_CreateCompletion(t *testing.T) {
	ctx := context.Background()
	messages := []model.ChatMessage{{Role: "user", Content: "Hello"}}

	t.Run("Missing API key fails fast without any upstream call", func(t *testing.T) {
		mockLLM := mock_llm.NewMockProvider(t)
		cfg := testConfig()
		cfg.UpstreamAPIKey = ""
		svc := service.NewChatService(mockLLM, cfg)

		_, err := svc.CreateCompletion(ctx, &model.ChatRequest{Messages: messages})

		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		mockLLM.AssertNotCalled(t, "CreateCompletion")
	})

	t.Run("Defaults are applied for absent parameters", func(t *testing.T) {
		mockLLM := mock_llm.NewMockProvider(t)
		svc := service.NewChatService(mockLLM, testConfig())

		mockLLM.On("CreateCompletion", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			return req.Model == "openai/gpt-4o-mini" &&
				req.MaxTokens == 1000 &&
				req.Temperature == 0.7
		})).Return(&llm.CompletionResponse{Message: "Hi!", FinishReason: "stop"}, nil).Once()

		resp, err := svc.CreateCompletion(ctx, &model.ChatRequest{Messages: messages})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Hi!", resp.Message)
		assert.Equal(t, "openai/gpt-4o-mini", resp.Model)
		assert.Equal(t, "stop", resp.FinishReason)
	})

	t.Run("Out-of-range parameters are clamped", func(t *testing.T) {
		cases := []struct {
			name            string
			maxTokens       int
			temperature     *float64
			wantMaxTokens   int
			wantTemperature float64
		}{
			{"Oversized token budget", 999999, nil, 4000, 0.7},
			{"Temperature above ceiling", 0, floatPtr(5), 1000, 2},
			{"Temperature below floor", 0, floatPtr(-1), 1000, 0},
			{"In-range values pass through", 2000, floatPtr(1.3), 2000, 1.3},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockLLM := mock_llm.NewMockProvider(t)
				svc := service.NewChatService(mockLLM, testConfig())

				mockLLM.On("CreateCompletion", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
					return req.MaxTokens == tc.wantMaxTokens && req.Temperature == tc.wantTemperature
				})).Return(&llm.CompletionResponse{Message: "ok"}, nil).Once()

				_, err := svc.CreateCompletion(ctx, &model.ChatRequest{
					Messages:    messages,
					MaxTokens:   tc.maxTokens,
					Temperature: tc.temperature,
				})
				require.NoError(t, err)
			})
		}
	})

	t.Run("Requested model overrides the default", func(t *testing.T) {
		mockLLM := mock_llm.NewMockProvider(t)
		svc := service.NewChatService(mockLLM, testConfig())

		mockLLM.On("CreateCompletion", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			return req.Model == "anthropic/claude-3.5-sonnet"
		})).Return(&llm.CompletionResponse{Message: "ok"}, nil).Once()

		resp, err := svc.CreateCompletion(ctx, &model.ChatRequest{
			Messages: messages,
			Model:    "anthropic/claude-3.5-sonnet",
		})
		require.NoError(t, err)
		assert.Equal(t, "anthropic/claude-3.5-sonnet", resp.Model)
	})

	t.Run("Conversation order is preserved on the wire", func(t *testing.T) {
		mockLLM := mock_llm.NewMockProvider(t)
		svc := service.NewChatService(mockLLM, testConfig())

		ordered := []model.ChatMessage{
			{Role: "system", Content: "You are an NPC."},
			{Role: "user", Content: "Who are you?"},
			{Role: "assistant", Content: "A merchant."},
			{Role: "user", Content: "What do you sell?"},
		}
		mockLLM.On("CreateCompletion", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			if len(req.Messages) != len(ordered) {
				return false
			}
			for i, m := range ordered {
				if req.Messages[i].Role != m.Role || req.Messages[i].Content != m.Content {
					return false
				}
			}
			return true
		})).Return(&llm.CompletionResponse{Message: "ok"}, nil).Once()

		_, err := svc.CreateCompletion(ctx, &model.ChatRequest{Messages: ordered})
		require.NoError(t, err)
	})

	t.Run("Upstream errors propagate unchanged for classification", func(t *testing.T) {
		mockLLM := mock_llm.NewMockProvider(t)
		svc := service.NewChatService(mockLLM, testConfig())

		upstreamErr := &llm.StatusError{StatusCode: http.StatusUnauthorized, Body: "bad key"}
		mockLLM.On("CreateCompletion", mock.Anything, mock.Anything).Return(nil, upstreamErr).Once()

		_, err := svc.CreateCompletion(ctx, &model.ChatRequest{Messages: messages})

		var statusErr *llm.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	})
}
