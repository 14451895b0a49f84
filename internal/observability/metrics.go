package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AuthFailures counts rejected requests on protected routes by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_auth_failures_total",
		Help: "Total number of requests rejected by access control",
	}, []string{"reason"})

	// CollectionMutations counts nested-collection operations by collection, op and outcome.
	CollectionMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_collection_mutations_total",
		Help: "Total number of nested collection mutations",
	}, []string{"collection", "op", "outcome"})

	// MutationConflicts counts version conflicts hit by read-modify-write cycles.
	MutationConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_mutation_conflicts_total",
		Help: "Total number of optimistic concurrency conflicts by table",
	}, []string{"table"})

	// RateLimitRejections counts requests rejected by the Redis rate limiter.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_rate_limit_rejections_total",
		Help: "Total number of requests rejected by rate limiting",
	}, []string{"resource"})
)

// RecordMutation records the outcome of a nested collection operation.
func RecordMutation(collection, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	CollectionMutations.WithLabelValues(collection, op, outcome).Inc()
}
