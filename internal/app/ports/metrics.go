package ports

// RefreshMetrics observes scheduler outcomes: one RecordRefresh per finished
// view fetch and one RecordCommand per submitted command.
type RefreshMetrics interface {
	RecordRefresh(kind string, ok bool)
	RecordCommand(accepted bool)
}
