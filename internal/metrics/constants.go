package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlannerAdds       = "planner_adds_total"
	MetricNamePlannerExpansions = "planner_expansions_total"
	MetricNamePlannerRemovals   = "planner_removals_total"
	MetricNameInventoryUpdates  = "inventory_updates_total"
	MetricNameSnapshotImports   = "snapshot_imports_total"
	MetricNameSnapshotExports   = "snapshot_exports_total"
	MetricNameSearchesPerformed = "searches_performed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlannerAdds       = "Total number of planner add operations"
	HelpTextPlannerExpansions = "Total number of recipe expansions performed"
	HelpTextPlannerRemovals   = "Total number of planner entries removed"
	HelpTextInventoryUpdates  = "Total number of inventory ledger mutations"
	HelpTextSnapshotImports   = "Total number of snapshot import attempts"
	HelpTextSnapshotExports   = "Total number of snapshot exports"
	HelpTextSearchesPerformed = "Total number of catalog searches performed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelOp     = "op"
	LabelResult = "result"
)

// Inventory operation label values
const (
	OpAdd    = "add"
	OpSet    = "set"
	OpRemove = "remove"
)

// Snapshot import result label values
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)
