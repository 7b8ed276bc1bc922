// Package routes provides shared API route constants used by both
// the API server and dashboard clients to prevent path mismatches.
package routes

// API route paths - these constants are shared between server and clients
// to ensure compile-time safety and prevent endpoint mismatches.
const (
	// AuthLogin exchanges credentials for a bearer token. Public endpoint.
	AuthLogin = "/auth/login"

	// AuthMe returns the current authenticated user's profile.
	AuthMe = "/auth/me"

	// Organizations lists the organizations the caller belongs to.
	Organizations = "/organizations"

	// OrganizationsByID returns a single organization.
	OrganizationsByID = "/organizations/{org_id}"

	// OrganizationsMembers lists an organization's members with roles.
	OrganizationsMembers = "/organizations/{org_id}/members"

	// OrganizationsSettings reads or updates organization settings.
	OrganizationsSettings = "/organizations/{org_id}/settings"

	// Notes is the collection endpoint for notes in the current organization.
	Notes = "/notes"

	// NotesByID addresses a single note.
	NotesByID = "/notes/{note_id}"

	// Feed returns the organization's activity feed.
	Feed = "/feed"

	// FeedLike records a like on a feed item.
	FeedLike = "/feed/{item_id}/like"

	// Clusters returns the organization's clusters for ranking views.
	Clusters = "/clusters"

	// Integrations lists the organization's connected integrations.
	Integrations = "/integrations"

	// IntegrationsByID addresses a single integration connection.
	IntegrationsByID = "/integrations/{integration_id}"
)
