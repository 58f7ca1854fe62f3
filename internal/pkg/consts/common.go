package consts

const (
	AllOption = "All"
)

const (
	ExportKindPosts   = "posts"
	ExportKindRevenue = "revenue"
	ExportKindMetrics = "metrics"
)

const (
	ExportObjectPrefix = "exports/"
	CSVContentType     = "text/csv"
)

const (
	DefaultTopN = 10
	MaxTopN     = 100
	InsightTopN = 5
)
