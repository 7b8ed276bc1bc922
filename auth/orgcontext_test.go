package auth

import "testing"

func TestOrgContextLifecycle(t *testing.T) {
	org := NewOrgContext()
	if snap := org.Snapshot(); !snap.IsLoading || snap.OrganizationID != "" {
		t.Errorf("initial snapshot = %+v, want loading", snap)
	}

	org.Set("org-1")
	if snap := org.Snapshot(); snap.IsLoading || snap.OrganizationID != "org-1" {
		t.Errorf("after Set = %+v", snap)
	}

	org.SetLoading()
	if snap := org.Snapshot(); !snap.IsLoading || snap.OrganizationID != "" {
		t.Errorf("after SetLoading = %+v", snap)
	}
}
