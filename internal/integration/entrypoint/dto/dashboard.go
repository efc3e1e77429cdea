package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the dashboard overview.
type DashboardResponse struct {
	PendingTasks    int             `json:"pending_tasks"`
	CompletedTasks  int             `json:"completed_tasks"`
	Habits          int             `json:"habits"`
	Goals           int             `json:"goals"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	WishlistItems   int             `json:"wishlist_items"`
	TopTasks        []TaskResponse  `json:"top_tasks"`
	UpcomingGoals   []GoalResponse  `json:"upcoming_goals"`
}

// ToDashboardResponse converts the overview output.
func ToDashboardResponse(out *dashboard.GetOverviewOutput) DashboardResponse {
	return DashboardResponse{
		PendingTasks:    out.Counts.PendingTasks,
		CompletedTasks:  out.Counts.CompletedTasks,
		Habits:          out.Counts.Habits,
		Goals:           out.Counts.Goals,
		MonthlyExpenses: out.Counts.MonthlyExpenses,
		WishlistItems:   out.Counts.WishlistItems,
		TopTasks:        ToTaskResponses(out.PendingTasks),
		UpcomingGoals:   ToGoalResponses(out.UpcomingGoals),
	}
}
