package anki

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/at-ishikawa/ankigen/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AddNote(t *testing.T) {
	record := lexicon.Record{
		Word:          ptr("bleed"),
		Meanings:      lexicon.NewMeanings("sangrar", "perder sangre"),
		Pronunciation: ptr("/blid/"),
		ExampleDomain: ptr("The wound continued to bleed."),
	}
	card := Render(record)

	tests := []struct {
		name              string
		template          CardTemplate
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantRaw    string
		wantNoteID int64
		wantCause  error
	}{
		{
			name:     "reversed template",
			template: TemplateReversed,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, map[string]any{
					"action":  "addNote",
					"version": float64(6),
					"params": map[string]any{
						"note": map[string]any{
							"deckName":  "Prueba",
							"modelName": "Basic (and reversed card)",
							"fields": map[string]any{
								"Front": card.Front,
								"Back":  card.Back,
							},
							"options": map[string]any{
								"allowDuplicate": false,
							},
						},
					},
				}, got)

				_, _ = w.Write([]byte(`{"result": 1496198395707, "error": null}`))
			},
			wantRaw:    `{"result": 1496198395707, "error": null}`,
			wantNoteID: 1496198395707,
		},
		{
			name:     "basic template",
			template: TemplateBasic,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				var got Request
				var params AddNoteParams
				got.Params = &params
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, TemplateBasic, params.Note.ModelName)

				_, _ = w.Write([]byte(`{"result": 1, "error": null}`))
			},
			wantRaw:    `{"result": 1, "error": null}`,
			wantNoteID: 1,
		},
		{
			name:     "any JSON value is accepted",
			template: TemplateBasic,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`42`))
			},
			wantRaw: `42`,
		},
		{
			name:     "server error",
			template: TemplateBasic,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`boom`))
			},
			wantCause: ErrUnreachable,
		},
		{
			name:     "malformed JSON",
			template: TemplateBasic,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>not anki</html>`))
			},
			wantCause: ErrUnexpectedReply,
		},
		{
			name:     "error member in a successful reply",
			template: TemplateBasic,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result": null, "error": "cannot create note because it is a duplicate"}`))
			},
			wantCause: ErrRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "Prueba")
			defer func() {
				_ = client.Close()
			}()

			receipt, err := client.AddNote(context.Background(), card, tt.template)
			if tt.wantCause != nil {
				require.Error(t, err)
				var submissionErr *SubmissionError
				require.True(t, errors.As(err, &submissionErr))
				assert.ErrorIs(t, err, tt.wantCause)
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.wantRaw, string(receipt.Raw))
			noteID, ok := receipt.NoteID()
			assert.Equal(t, tt.wantNoteID != 0, ok)
			assert.Equal(t, tt.wantNoteID, noteID)
		})
	}
}

func TestClient_AddNote_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, "Prueba")
	_, err := client.AddNote(context.Background(), Card{Front: "a", Back: "b"}, TemplateBasic)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Contains(t, err.Error(), "AnkiConnect add-on is installed")
}

func TestClient_Version(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     int
		wantErr  bool
	}{
		{name: "envelope", response: `{"result": 6, "error": null}`, want: 6},
		{name: "bare number", response: `6`, want: 6},
		{name: "unexpected shape", response: `"six"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var got Request
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "version", got.Action)
				assert.Equal(t, 6, got.Version)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			got, err := NewClient(server.URL, "Prueba").Version(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedReply)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_DefaultURL(t *testing.T) {
	client := NewClient("", "Prueba")
	assert.Equal(t, DefaultURL, client.url)
	assert.Equal(t, "Prueba", client.deckName)
}
