package model

// Task represents a standalone to-do entry, independent of the other
// record types.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// Task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidTaskStatus reports whether status is a known task status.
func ValidTaskStatus(status string) bool {
	switch status {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// ValidTaskPriority reports whether priority is a known task priority.
func ValidTaskPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// PriorityRank orders priorities for display: high first.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
