package sigment

import (
	"context"
	"net/http"
	"testing"

	"github.com/sigment/sigment-go/testutil"
)

func TestIntegrationsConnectAndDisconnect(t *testing.T) {
	srv, rec := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/integrations": {Status: http.StatusCreated, Body: map[string]any{
			"integration": Integration{ID: "int-1", Provider: "slack", Status: "pending"},
		}},
		"/api/v1/integrations/int-1": {Status: http.StatusNoContent},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	integration, err := client.Integrations.Connect(context.Background(), ConnectIntegrationRequest{Provider: "slack"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if integration.ID != "int-1" || integration.Provider != "slack" {
		t.Errorf("integration = %+v", integration)
	}

	if err := client.Integrations.Disconnect(context.Background(), "int-1"); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	reqs := rec.Requests()
	if len(reqs) != 2 || reqs[1].Method != http.MethodDelete {
		t.Errorf("requests = %+v, want POST then DELETE", reqs)
	}
}

func TestIntegrationsNotFound(t *testing.T) {
	srv, _ := testutil.NewJSONServer(map[string]testutil.JSONResponse{})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	_, err := client.Integrations.List(context.Background())
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not-found APIError", err)
	}
}
