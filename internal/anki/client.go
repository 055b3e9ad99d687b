package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"resty.dev/v3"
)

const (
	DefaultURL = "http://localhost:8765"
	apiVersion = 6
)

var (
	ErrUnreachable     = errors.New("AnkiConnect is unreachable")
	ErrUnexpectedReply = errors.New("unexpected reply from AnkiConnect")
	ErrRejected        = errors.New("AnkiConnect rejected the request")
)

// SubmissionError explains why a note could not be submitted.
// Cause is one of ErrUnreachable, ErrUnexpectedReply or ErrRejected.
type SubmissionError struct {
	Cause error
	Err   error
}

func (e *SubmissionError) Error() string {
	hint := "make sure Anki is open and the AnkiConnect add-on is installed"
	if errors.Is(e.Cause, ErrRejected) {
		hint = "check the deck and note type exist and the note is not a duplicate"
	}
	return fmt.Sprintf("%v: %v (%s)", e.Cause, e.Err, hint)
}

func (e *SubmissionError) Unwrap() []error {
	return []error{e.Cause, e.Err}
}

type Request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type AddNoteParams struct {
	Note Note `json:"note"`
}

type Note struct {
	DeckName  string       `json:"deckName"`
	ModelName CardTemplate `json:"modelName"`
	Fields    NoteFields   `json:"fields"`
	Options   NoteOptions  `json:"options"`
}

type NoteFields struct {
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

type NoteOptions struct {
	AllowDuplicate bool `json:"allowDuplicate"`
}

// Receipt is the acknowledgement returned by AnkiConnect, kept as received.
type Receipt struct {
	Raw json.RawMessage
}

// NoteID returns the id of the created note when the acknowledgement carries one.
func (r Receipt) NoteID() (int64, bool) {
	var envelope struct {
		Result *int64 `json:"result"`
	}
	if err := json.Unmarshal(r.Raw, &envelope); err != nil || envelope.Result == nil {
		return 0, false
	}
	return *envelope.Result, true
}

type Client struct {
	httpClient *resty.Client
	url        string
	deckName   string
}

func NewClient(url, deckName string) *Client {
	if url == "" {
		url = DefaultURL
	}
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		url:        url,
		deckName:   deckName,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// NewAddNoteRequest builds the addNote envelope for the client's deck.
func (client *Client) NewAddNoteRequest(card Card, template CardTemplate) Request {
	return Request{
		Action:  "addNote",
		Version: apiVersion,
		Params: AddNoteParams{
			Note: Note{
				DeckName:  client.deckName,
				ModelName: template,
				Fields: NoteFields{
					Front: card.Front,
					Back:  card.Back,
				},
				Options: NoteOptions{
					AllowDuplicate: false,
				},
			},
		},
	}
}

// AddNote creates a single note. A reply whose "error" member is not null is returned as a SubmissionError.
func (client *Client) AddNote(ctx context.Context, card Card, template CardTemplate) (Receipt, error) {
	body, err := client.post(ctx, client.NewAddNoteRequest(card, template))
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{Raw: body}, nil
}

// Version returns the AnkiConnect API version.
func (client *Client) Version(ctx context.Context) (int, error) {
	body, err := client.post(ctx, Request{
		Action:  "version",
		Version: apiVersion,
	})
	if err != nil {
		return 0, err
	}

	var version int
	if err := json.Unmarshal(body, &version); err == nil {
		return version, nil
	}
	var envelope struct {
		Result int `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, &SubmissionError{Cause: ErrUnexpectedReply, Err: fmt.Errorf("json.Unmarshal(%s) > %w", body, err)}
	}
	return envelope.Result, nil
}

func (client *Client) post(ctx context.Context, request Request) (json.RawMessage, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		Post(client.url)
	if err != nil {
		return nil, &SubmissionError{Cause: ErrUnreachable, Err: fmt.Errorf("httpClient.Post > %w", err)}
	}
	if !response.IsSuccess() {
		return nil, &SubmissionError{
			Cause: ErrUnreachable,
			Err:   fmt.Errorf("status code: %d, body: %s", response.StatusCode(), response.String()),
		}
	}

	body := bytes.TrimSpace([]byte(response.String()))
	slog.Default().Debug("ankiconnect response",
		"action", request.Action,
		"body", string(body),
	)
	if !json.Valid(body) {
		return nil, &SubmissionError{Cause: ErrUnexpectedReply, Err: fmt.Errorf("invalid JSON: %q", body)}
	}

	if len(body) > 0 && body[0] == '{' {
		var envelope struct {
			Error *string `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
			return nil, &SubmissionError{Cause: ErrRejected, Err: errors.New(*envelope.Error)}
		}
	}
	return json.RawMessage(body), nil
}
