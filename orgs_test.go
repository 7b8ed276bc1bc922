package sigment

import (
	"context"
	"net/http"
	"testing"

	"github.com/sigment/sigment-go/testutil"
)

func TestOrgsMembers(t *testing.T) {
	srv, _ := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/organizations/org-1/members": {Body: map[string]any{
			"members": []Member{
				{UserID: "u1", Role: "OWNER"},
				{UserID: "u2", Role: "MEMBER"},
			},
		}},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	members, err := client.Orgs.Members(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 2 || members[0].Role != "OWNER" {
		t.Errorf("members = %v", members)
	}
}

func TestOrgsUpdateSettings(t *testing.T) {
	srv, rec := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/organizations/org-1/settings": {Body: map[string]any{
			"settings": OrgSettings{DisplayName: "Acme", FeedVisible: true},
		}},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	settings, err := client.Orgs.UpdateSettings(context.Background(), "org-1", OrgSettings{DisplayName: "Acme", FeedVisible: true})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if settings.DisplayName != "Acme" {
		t.Errorf("settings = %+v", settings)
	}
	if reqs := rec.Requests(); reqs[0].Method != http.MethodPut {
		t.Errorf("method = %q, want PUT", reqs[0].Method)
	}
}

func TestOrgsMe(t *testing.T) {
	srv, _ := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/auth/me": {Body: map[string]any{
			"user": User{ID: "user-1", Email: "me@example.com"},
		}},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	user, err := client.Orgs.Me(context.Background())
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("user = %+v", user)
	}
}
