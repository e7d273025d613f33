package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

type Service struct {
	BracketsGenerated   *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	ResultsRecorded     *prometheus.CounterVec
	ResultsRejected     prometheus.Counter
	RoundsAdvanced      prometheus.Counter
	TournamentsComplete prometheus.Counter
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		BracketsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tournament_brackets_generated_total",
			Help: "Brackets generated, by format.",
		}, []string{"format"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tournament_generation_duration_seconds",
			Help:    "Time spent generating and persisting a bracket or round.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ResultsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tournament_results_recorded_total",
			Help: "Match results accepted, by resulting match status.",
		}, []string{"status"}),
		ResultsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tournament_results_rejected_total",
			Help: "Match results rejected by validation or a version conflict.",
		}),
		RoundsAdvanced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tournament_rounds_advanced_total",
			Help: "Rounds closed by the organiser.",
		}),
		TournamentsComplete: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tournament_completed_total",
			Help: "Tournaments that reached the completed status.",
		}),
	}

	reg.MustRegister(
		s.BracketsGenerated,
		s.GenerationDuration,
		s.ResultsRecorded,
		s.ResultsRejected,
		s.RoundsAdvanced,
		s.TournamentsComplete,
	)

	return s
}

func (s *Service) IncBracketsGenerated(format string) {
	s.BracketsGenerated.WithLabelValues(format).Inc()
}

func (s *Service) ObserveGenerationDuration(seconds float64) {
	s.GenerationDuration.Observe(seconds)
}

func (s *Service) IncResultsRecorded(status string) {
	s.ResultsRecorded.WithLabelValues(status).Inc()
}

func (s *Service) IncResultsRejected() {
	s.ResultsRejected.Inc()
}

func (s *Service) IncRoundsAdvanced() {
	s.RoundsAdvanced.Inc()
}

func (s *Service) IncTournamentsCompleted() {
	s.TournamentsComplete.Inc()
}
