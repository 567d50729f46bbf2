package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopstate_store_mutations_total",
			Help: "Total number of applied store mutations",
		},
		[]string{"store", "op"},
	)

	storeItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shopstate_store_items",
			Help: "Current number of entries held by a store",
		},
		[]string{"store"},
	)

	storePersistFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopstate_store_persist_failures_total",
			Help: "Total number of swallowed persistence failures",
		},
		[]string{"store"},
	)
)
