package types

// MetricsCollector defines methods for recording engine metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine calls these synchronously on the generation path, so
// implementations must be cheap.
type MetricsCollector interface {
	// RecordGenerateDuration records the wall time of one Generate call.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - outcome: Result class ("assigned", "infeasible", "invalid_input", "error")
	RecordGenerateDuration(duration float64, outcome string)

	// RecordShuffleAttempts records how many randomized shuffle attempts a
	// generation run consumed before succeeding or falling back.
	//
	// Parameters:
	//   - attempts: Number of shuffle attempts used
	RecordShuffleAttempts(attempts int)

	// RecordMatchingFallback records that the randomized phase exhausted
	// its budget and the constructive matching fallback ran.
	RecordMatchingFallback()
}
