package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "registration_service",
		Subsystem: "api",
		Name:      "signups_total",
		Help:      "Signup attempts partitioned by outcome.",
	}, []string{"outcome"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "registration_service",
		Subsystem: "api",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts partitioned by outcome.",
	}, []string{"outcome"})
	participantGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "registration_service",
		Subsystem: "registry",
		Name:      "participants",
		Help:      "Current number of enrollments across all activities.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, participantGauge)
}

// RecordSignup counts one signup attempt.
func RecordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

// RecordUnregistration counts one unregister attempt.
func RecordUnregistration(outcome string) {
	unregisterCounter.WithLabelValues(outcome).Inc()
}

// SetParticipantTotal seeds the enrollment gauge at startup.
func SetParticipantTotal(n int) {
	participantGauge.Set(float64(n))
}

// ParticipantJoined moves the enrollment gauge up after a successful signup.
func ParticipantJoined() {
	participantGauge.Inc()
}

// ParticipantLeft moves the enrollment gauge down after a successful unregister.
func ParticipantLeft() {
	participantGauge.Dec()
}
