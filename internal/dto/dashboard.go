package dto

// UnitOccupancy is the per-status unit count breakdown.
type UnitOccupancy struct {
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Occupied  int `json:"occupied"`
}

// DashboardSummary is the aggregate view served to the dashboard.
type DashboardSummary struct {
	DealsInProgress     int           `json:"dealsInProgress"`
	DealsBlocked        int           `json:"dealsBlocked"`
	DealsAwaitingAction int           `json:"dealsAwaitingAction"`
	DealsCompleted      int           `json:"dealsCompleted"`
	UnitOccupancy       UnitOccupancy `json:"unitOccupancy"`
}
