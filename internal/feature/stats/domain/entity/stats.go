// Package entity defines the aggregate views served by the stats feature.
package entity

// PublicStats is the headline figures block on the public homepage.
type PublicStats struct {
	// ProjectsCount is the total number of projects.
	ProjectsCount int64 `json:"projects_count"`
	// ArticlesCount counts published articles only.
	ArticlesCount int64 `json:"articles_count"`
	// MembersCount counts approved members only.
	MembersCount int64 `json:"members_count"`
	// MessagesCount counts unread contact messages.
	MessagesCount int64 `json:"messages_count"`
}

// AdminStats is the dashboard overview for the admin area.
type AdminStats struct {
	Projects       int64 `json:"projects"`
	Articles       int64 `json:"articles"`
	Members        int64 `json:"members"`
	PendingMembers int64 `json:"pending_members"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}
