package auth

import "sync"

// OrgSnapshot is the current organization selection: the active org id and
// whether the selection is still being hydrated.
type OrgSnapshot struct {
	OrganizationID string
	IsLoading      bool
}

// OrgContext holds the live organization selection shared by concurrent
// requests. Callers set it on login and on every organization switch;
// ChainResolver reads it per request. Safe for concurrent use.
type OrgContext struct {
	mu   sync.RWMutex
	snap OrgSnapshot
}

// NewOrgContext returns a context in the loading state, matching a caller
// that has not hydrated its organization selection yet.
func NewOrgContext() *OrgContext {
	return &OrgContext{snap: OrgSnapshot{IsLoading: true}}
}

// Set records the active organization and clears the loading flag.
func (o *OrgContext) Set(orgID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap = OrgSnapshot{OrganizationID: orgID}
}

// SetLoading marks the selection as hydrating. Resolvers fall back to the
// persisted store while loading.
func (o *OrgContext) SetLoading() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap = OrgSnapshot{IsLoading: true}
}

// Snapshot returns the current selection.
func (o *OrgContext) Snapshot() OrgSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snap
}
