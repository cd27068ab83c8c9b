package dto

import "github.com/yukikurage/member-care-api/internal/timestamp"

// Stats is the flat count structure behind the dashboard.
type Stats struct {
	TotalMembers     int `json:"totalMembers"`
	NewConverts      int `json:"newConverts"`
	Baptized         int `json:"baptized"`
	InBibleStudy     int `json:"inBibleStudy"`
	InSmallGroup     int `json:"inSmallGroup"`
	ActiveMembers    int `json:"activeMembers"`
	PendingTasks     int `json:"pendingTasks"`
	CompletedTasks   int `json:"completedTasks"`
	PendingFollowups int `json:"pendingFollowups"`
}

// TaskCompletion breaks recent tasks down by status.
type TaskCompletion struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// ConversionFunnel counts members at each stage of the care pipeline.
type ConversionFunnel struct {
	NewConverts  int `json:"newConverts"`
	Contacted    int `json:"contacted"`
	Baptized     int `json:"baptized"`
	InBibleStudy int `json:"inBibleStudy"`
	InSmallGroup int `json:"inSmallGroup"`
}

// Analytics reports growth metrics for a recent time window.
type Analytics struct {
	MemberGrowth     int                 `json:"memberGrowth"`
	TaskCompletion   TaskCompletion      `json:"taskCompletion"`
	ConversionFunnel ConversionFunnel    `json:"conversionFunnel"`
	TimeRange        string              `json:"timeRange"`
	StartDate        timestamp.Timestamp `json:"startDate"`
	EndDate          timestamp.Timestamp `json:"endDate"`
}
