package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Reconciliations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "devforge_reconciliations_total", Help: "Identity reconciliations by provider and outcome"},
		[]string{"provider", "outcome"},
	)
	ChallengesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "devforge_challenges_created_total", Help: "Challenges created by initial status"},
		[]string{"status"},
	)
	ModerationBlocked = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devforge_moderation_blocked_total", Help: "Submissions held back by the moderation filter"},
	)
	EvaluationsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devforge_evaluations_total", Help: "Evaluations recorded"},
	)
	SolutionsAutoApproved = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devforge_solutions_auto_approved_total", Help: "Solutions auto-approved by a max-score evaluation"},
	)
)

func Register() {
	prometheus.MustRegister(
		Reconciliations,
		ChallengesCreated,
		ModerationBlocked,
		EvaluationsRecorded,
		SolutionsAutoApproved,
	)
}
