package sigment

import (
	"context"
	"net/url"
	"strings"

	"github.com/sigment/sigment-go/routes"
)

// NotesClient covers notes in the current organization. The local-first
// sync queue some callers run on top of this is their own concern; every
// method here is a single network call.
type NotesClient struct {
	client *Client
}

// List returns the organization's notes.
func (c *NotesClient) List(ctx context.Context) ([]Note, error) {
	var payload struct {
		Notes []Note `json:"notes"`
	}
	if err := c.client.Get(ctx, routes.Notes, &payload); err != nil {
		return nil, err
	}
	return payload.Notes, nil
}

// Create stores a new note and returns it with server-assigned fields.
func (c *NotesClient) Create(ctx context.Context, input NoteInput) (Note, error) {
	var payload struct {
		Note Note `json:"note"`
	}
	if err := c.client.Post(ctx, routes.Notes, input, &payload); err != nil {
		return Note{}, err
	}
	return payload.Note, nil
}

// Update replaces a note's writable fields.
func (c *NotesClient) Update(ctx context.Context, noteID string, input NoteInput) (Note, error) {
	path := strings.ReplaceAll(routes.NotesByID, "{note_id}", url.PathEscape(noteID))
	var payload struct {
		Note Note `json:"note"`
	}
	if err := c.client.Patch(ctx, path, input, &payload); err != nil {
		return Note{}, err
	}
	return payload.Note, nil
}

// Delete removes a note. The server answers 204 on success.
func (c *NotesClient) Delete(ctx context.Context, noteID string) error {
	path := strings.ReplaceAll(routes.NotesByID, "{note_id}", url.PathEscape(noteID))
	return c.client.Delete(ctx, path)
}
