package sigment

import (
	"context"
	"net/url"
	"strings"

	"github.com/sigment/sigment-go/routes"
)

// OrgsClient covers organizations, membership, and settings.
type OrgsClient struct {
	client *Client
}

// Me returns the authenticated user's profile.
func (c *OrgsClient) Me(ctx context.Context) (User, error) {
	var payload struct {
		User User `json:"user"`
	}
	if err := c.client.Get(ctx, routes.AuthMe, &payload); err != nil {
		return User{}, err
	}
	return payload.User, nil
}

// List returns the organizations the caller belongs to.
func (c *OrgsClient) List(ctx context.Context) ([]Organization, error) {
	var payload struct {
		Organizations []Organization `json:"organizations"`
	}
	if err := c.client.Get(ctx, routes.Organizations, &payload); err != nil {
		return nil, err
	}
	return payload.Organizations, nil
}

// Get returns a single organization.
func (c *OrgsClient) Get(ctx context.Context, orgID string) (Organization, error) {
	path := strings.ReplaceAll(routes.OrganizationsByID, "{org_id}", url.PathEscape(orgID))
	var payload struct {
		Organization Organization `json:"organization"`
	}
	if err := c.client.Get(ctx, path, &payload); err != nil {
		return Organization{}, err
	}
	return payload.Organization, nil
}

// Members lists an organization's members with their roles.
func (c *OrgsClient) Members(ctx context.Context, orgID string) ([]Member, error) {
	path := strings.ReplaceAll(routes.OrganizationsMembers, "{org_id}", url.PathEscape(orgID))
	var payload struct {
		Members []Member `json:"members"`
	}
	if err := c.client.Get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Members, nil
}

// Settings returns the organization's settings.
func (c *OrgsClient) Settings(ctx context.Context, orgID string) (OrgSettings, error) {
	path := strings.ReplaceAll(routes.OrganizationsSettings, "{org_id}", url.PathEscape(orgID))
	var payload struct {
		Settings OrgSettings `json:"settings"`
	}
	if err := c.client.Get(ctx, path, &payload); err != nil {
		return OrgSettings{}, err
	}
	return payload.Settings, nil
}

// UpdateSettings replaces the organization's settings. Requires the OWNER
// or BOARD role; the server enforces this.
func (c *OrgsClient) UpdateSettings(ctx context.Context, orgID string, settings OrgSettings) (OrgSettings, error) {
	path := strings.ReplaceAll(routes.OrganizationsSettings, "{org_id}", url.PathEscape(orgID))
	var payload struct {
		Settings OrgSettings `json:"settings"`
	}
	if err := c.client.Put(ctx, path, settings, &payload); err != nil {
		return OrgSettings{}, err
	}
	return payload.Settings, nil
}
