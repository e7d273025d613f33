package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	bracketsGenerated   map[string]int
	generationDurations []float64
	resultsRecorded     map[string]int
	resultsRejected     int
	roundsAdvanced      int
	tournamentsComplete int
}

func NewMock() *Mock {
	return &Mock{
		bracketsGenerated: make(map[string]int),
		resultsRecorded:   make(map[string]int),
	}
}

func (m *Mock) IncBracketsGenerated(format string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bracketsGenerated[format]++
}

func (m *Mock) ObserveGenerationDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generationDurations = append(m.generationDurations, seconds)
}

func (m *Mock) IncResultsRecorded(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resultsRecorded[status]++
}

func (m *Mock) IncResultsRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resultsRejected++
}

func (m *Mock) IncRoundsAdvanced() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsAdvanced++
}

func (m *Mock) IncTournamentsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsComplete++
}

// BracketsGenerated returns how many brackets of format were generated.
func (m *Mock) BracketsGenerated(format string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bracketsGenerated[format]
}

func (m *Mock) GenerationObservations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.generationDurations)
}

// ResultsRecorded returns how many results left a match in status.
func (m *Mock) ResultsRecorded(status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resultsRecorded[status]
}

func (m *Mock) ResultsRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resultsRejected
}

func (m *Mock) RoundsAdvanced() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsAdvanced
}

func (m *Mock) TournamentsCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsComplete
}
