package models

// Stats are the public portfolio counters. Projects and achievements count
// published items only; users counts active accounts.
type Stats struct {
	TotalProjects     int64 `json:"total_projects"`
	TotalAchievements int64 `json:"total_achievements"`
	TotalLikes        int64 `json:"total_likes"`
	TotalComments     int64 `json:"total_comments"`
	TotalUsers        int64 `json:"total_users"`
}
