// Package headers defines HTTP header constants used across the Sigment platform.
// This is the single source of truth for header names used in API requests/responses.
package headers

const (
	// RequestID is the header for request correlation.
	// The client generates a fresh value per request.
	RequestID = "X-Request-Id"

	// OrganizationID scopes a request to one organization (tenant).
	// Omitted when no organization is resolved; the server is the source
	// of truth for rejecting unscoped requests to org-bound endpoints.
	OrganizationID = "X-Organization-Id"

	// UserID is the legacy identity header.
	//
	// Deprecated: identity is carried inside the bearer token. The client
	// never sends this header.
	UserID = "X-User-Id"
)
