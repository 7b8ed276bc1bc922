package sigment

import (
	"context"
	"net/http"
	"testing"

	"github.com/sigment/sigment-go/headers"
	"github.com/sigment/sigment-go/testutil"
)

func TestNotesList(t *testing.T) {
	srv, rec := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/notes": {Body: map[string]any{
			"notes": []Note{{ID: "n1", Title: "standup", AuthorID: "user-1"}},
		}},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	notes, err := client.Notes.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "n1" {
		t.Errorf("notes = %v, want one note n1", notes)
	}

	reqs := rec.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	if org := reqs[0].Header.Get(headers.OrganizationID); org != "org-1" {
		t.Errorf("org header = %q, want org-1", org)
	}
}

func TestNotesCreate(t *testing.T) {
	srv, rec := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/notes": {Status: http.StatusCreated, Body: map[string]any{
			"note": Note{ID: "n2", Title: "retro", Body: "went fine"},
		}},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	note, err := client.Notes.Create(context.Background(), NoteInput{Title: "retro", Body: "went fine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if note.ID != "n2" {
		t.Errorf("note id = %q, want n2", note.ID)
	}
	if reqs := rec.Requests(); reqs[0].Method != http.MethodPost {
		t.Errorf("method = %q, want POST", reqs[0].Method)
	}
}

func TestNotesDeleteNoContent(t *testing.T) {
	srv, rec := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/notes/n1": {Status: http.StatusNoContent},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	if err := client.Notes.Delete(context.Background(), "n1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if reqs := rec.Requests(); reqs[0].Method != http.MethodDelete {
		t.Errorf("method = %q, want DELETE", reqs[0].Method)
	}
}
