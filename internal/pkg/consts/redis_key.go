package consts

const (
	DashboardOverviewKey = "campaign:dashboard:overview:"
	DashboardInsightsKey = "campaign:dashboard:insights:"
)
