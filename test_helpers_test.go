package sigment

import (
	"net/http/httptest"
	"testing"

	"github.com/sigment/sigment-go/auth"
)

func testIdentity() auth.Identity {
	return auth.Identity{
		UserID:         "user-1",
		OrganizationID: "org-1",
		Token:          "tok-123",
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, id auth.Identity) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Resolver:   auth.Static{Identity: id},
	})
	if err != nil {
		t.Fatalf("new test client: %v", err)
	}
	return client
}
