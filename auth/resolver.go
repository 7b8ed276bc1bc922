// Package auth resolves the caller's identity for the Sigment API client:
// user id, organization id, and bearer token.
package auth

import "context"

// Identity is the auth triple attached to outgoing requests. It is derived
// per request and never stored; absent values are empty strings.
type Identity struct {
	UserID         string
	OrganizationID string
	Token          string
}

// Resolver produces the current Identity. Resolve never fails: missing
// values resolve to empty strings, not errors, so a request issued before
// login simply goes out unauthenticated and the server decides.
type Resolver interface {
	Resolve(ctx context.Context) Identity
}

// Static is a Resolver returning a fixed Identity. Useful for tests and
// for server-side callers that already hold a token.
type Static struct {
	Identity Identity
}

// Resolve returns the fixed identity.
func (s Static) Resolve(context.Context) Identity { return s.Identity }

// ChainResolver sources the organization id preferentially from a live
// OrgContext, so requests follow organization switches, and falls back to
// the persisted store when no context value is available yet. UserID and
// Token always come from the store.
type ChainResolver struct {
	Store *FileStore
	Org   *OrgContext
}

// Resolve assembles the identity. A nil Store or Org is treated as empty.
func (c ChainResolver) Resolve(ctx context.Context) Identity {
	var id Identity
	if c.Store != nil {
		creds := c.Store.Read()
		id.UserID = creds.UserID
		id.OrganizationID = creds.OrganizationID
		id.Token = creds.AccessToken
	}
	if c.Org != nil {
		if snap := c.Org.Snapshot(); snap.OrganizationID != "" {
			id.OrganizationID = snap.OrganizationID
		}
	}
	return id
}
