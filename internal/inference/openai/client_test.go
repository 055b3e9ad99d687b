package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func TestClient_Complete(t *testing.T) {
	tests := []struct {
		name              string
		prompt            string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want            string
		wantError       bool
		wantErrorString string
	}{
		{
			name:   "Success",
			prompt: "Describe the word bleed",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var reqBody ChatCompletionRequest
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				require.NoError(t, err)
				assert.Equal(t, "gpt-4", reqBody.Model)
				require.Len(t, reqBody.Messages, 1)
				assert.Equal(t, RoleUser, reqBody.Messages[0].Role)
				assert.Equal(t, "Describe the word bleed", reqBody.Messages[0].Content)

				mockResponse := ChatCompletionResponse{
					ID:      "chatcmpl-123",
					Object:  "chat.completion",
					Created: 1677652288,
					Model:   "gpt-4",
					Choices: []Choice{
						{
							Index: 0,
							Message: ChoiceMessage{
								Role:    RoleAssistant,
								Content: `{"word": "bleed"}`,
							},
							FinishReason: "stop",
						},
					},
					Usage: Usage{
						PromptTokens:     100,
						CompletionTokens: 50,
						TotalTokens:      150,
					},
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(mockResponse)
			},
			want: `{"word": "bleed"}`,
		},
		{
			name:   "API error",
			prompt: "Describe the word bleed",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error": {"message": "Internal server error"}}`))
			},
			wantError:       true,
			wantErrorString: "response error 500",
		},
		{
			name:   "Non-success status below 400",
			prompt: "Describe the word bleed",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotModified)
			},
			wantError:       true,
			wantErrorString: "response error 304",
		},
		{
			name:   "Empty choices",
			prompt: "Describe the word bleed",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(ChatCompletionResponse{Model: "gpt-4"})
			},
			wantError:       true,
			wantErrorString: "empty response body or choices",
		},
		{
			name:   "Empty content",
			prompt: "Describe the word bleed",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(ChatCompletionResponse{
					Choices: []Choice{{Message: ChoiceMessage{Role: RoleAssistant}}},
				})
			},
			wantError:       true,
			wantErrorString: "empty response content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient: resty.New().SetBaseURL(server.URL),
				model:      "gpt-4",
			}
			defer func() {
				_ = client.Close()
			}()

			got, gotErr := client.Complete(context.Background(), tt.prompt)

			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}

			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient("key", "gpt-4o-mini")
	defer func() {
		_ = client.Close()
	}()

	assert.Equal(t, "gpt-4o-mini", client.GetModel())
}
