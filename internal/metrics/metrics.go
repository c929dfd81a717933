package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LikesAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "links_likes_added_total",
		Help: "Successful like requests, idempotent repeats included.",
	})

	LikesRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "links_likes_removed_total",
		Help: "Successful unlike requests.",
	})

	LikesRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "links_likes_rejected_total",
		Help: "Unlike requests from visitors who had not liked the page.",
	})

	StoreErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "links_store_errors_total",
		Help: "Like store failures by operation.",
	}, []string{"op"})
)
