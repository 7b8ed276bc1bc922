package sigment

import "time"

// Organization is a tenant: the isolation boundary for data and roles.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is a user's membership in an organization.
type Member struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// OrgSettings are organization-level preferences editable by OWNER/BOARD.
type OrgSettings struct {
	DisplayName   string `json:"display_name"`
	FeedVisible   bool   `json:"feed_visible"`
	AllowInvites  bool   `json:"allow_invites"`
	DefaultLocale string `json:"default_locale,omitempty"`
}

// User is the authenticated caller's profile from /auth/me.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Note is a user note scoped to the current organization.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteInput carries the writable note fields for create and update.
type NoteInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// FeedItem is one entry in the organization activity feed.
type FeedItem struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	LikeCount int       `json:"like_count"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}

// Cluster is a ranked grouping shown on the dashboard. Score and
// MemberCount are the two ranking fields.
type Cluster struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	MemberCount int     `json:"member_count"`
}

// Integration is a third-party connection owned by the organization.
type Integration struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ConnectIntegrationRequest starts a new integration connection.
type ConnectIntegrationRequest struct {
	Provider string            `json:"provider"`
	Settings map[string]string `json:"settings,omitempty"`
}
