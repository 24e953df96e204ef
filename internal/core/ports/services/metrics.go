package services

// MetricsRecorder receives domain events worth counting.
type MetricsRecorder interface {
	RecordSignIn(provider, outcome string)
	RecordBookmarkOperation(operation, outcome string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) RecordSignIn(string, string)            {}
func (NopMetrics) RecordBookmarkOperation(string, string) {}
