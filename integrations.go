package sigment

import (
	"context"
	"net/url"
	"strings"

	"github.com/sigment/sigment-go/routes"
)

// IntegrationsClient covers third-party connections for the organization.
type IntegrationsClient struct {
	client *Client
}

// List returns the organization's integrations.
func (c *IntegrationsClient) List(ctx context.Context) ([]Integration, error) {
	var payload struct {
		Integrations []Integration `json:"integrations"`
	}
	if err := c.client.Get(ctx, routes.Integrations, &payload); err != nil {
		return nil, err
	}
	return payload.Integrations, nil
}

// Connect starts a new integration connection.
func (c *IntegrationsClient) Connect(ctx context.Context, req ConnectIntegrationRequest) (Integration, error) {
	var payload struct {
		Integration Integration `json:"integration"`
	}
	if err := c.client.Post(ctx, routes.Integrations, req, &payload); err != nil {
		return Integration{}, err
	}
	return payload.Integration, nil
}

// Disconnect removes an integration connection.
func (c *IntegrationsClient) Disconnect(ctx context.Context, integrationID string) error {
	path := strings.ReplaceAll(routes.IntegrationsByID, "{integration_id}", url.PathEscape(integrationID))
	return c.client.Delete(ctx, path)
}
