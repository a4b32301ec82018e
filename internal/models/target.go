package models

// TargetType names the kind of catalog item a like or comment points at.
type TargetType string

const (
	TargetProject     TargetType = "project"
	TargetAchievement TargetType = "achievement"
)

// Target identifies exactly one catalog item. Storing the (type, id) pair as a
// single unit instead of two nullable foreign keys makes a half-set or
// double-set target unrepresentable.
type Target struct {
	Type TargetType `json:"target_type"`
	ID   uint       `json:"target_id"`
}

func ProjectTarget(id uint) Target {
	return Target{Type: TargetProject, ID: id}
}

func AchievementTarget(id uint) Target {
	return Target{Type: TargetAchievement, ID: id}
}
