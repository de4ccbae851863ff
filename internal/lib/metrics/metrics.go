// Package metrics содержит счетчики Prometheus для ключевых операций сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubscriptionsTotal счетчик запросов на подписку по исходам.
	SubscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsletter_subscriptions_total",
		Help: "Total subscription requests by outcome.",
	}, []string{"outcome"})

	// SyncRunsTotal счетчик запусков выгрузки в таблицу по исходам.
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sheet_sync_runs_total",
		Help: "Total sheet sync job runs by outcome.",
	}, []string{"outcome"})

	// SyncedSubscribersTotal счетчик выгруженных строк с подписчиками.
	SyncedSubscribersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sheet_sync_subscribers_total",
		Help: "Total subscriber rows appended to the sheet.",
	})
)
