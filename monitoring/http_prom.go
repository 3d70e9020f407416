// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "incidentguard_http_request_duration_seconds",
	Help:    "Duration of handled http requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})
