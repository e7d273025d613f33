package metrics

// Metrics records what the tournament engine does. Services depend on this
// interface so tests can swap in Mock.
type Metrics interface {
	IncBracketsGenerated(format string)
	ObserveGenerationDuration(seconds float64)
	IncResultsRecorded(status string)
	IncResultsRejected()
	IncRoundsAdvanced()
	IncTournamentsCompleted()
}
