// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var IncidentsCreatedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentguard_incidents_created_amount",
	Help: "The total number of created incidents",
}, []string{"severity"})

var IncidentStatusTransitionsAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentguard_incident_status_transitions_amount",
	Help: "The total number of incident status transitions",
}, []string{"from", "to"})

var IncidentEscalationsAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "incidentguard_incident_escalations_amount",
	Help: "The total number of incidents raised to critical",
})

var PostMortemsPublishedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "incidentguard_postmortems_published_amount",
	Help: "The total number of published post-mortems",
})

var RootCauseSuggestionsAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentguard_root_cause_suggestions_amount",
	Help: "The total number of requested root cause suggestions",
}, []string{"result"})

var NotificationIntentsAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentguard_notification_intents_amount",
	Help: "The total number of notification intents",
}, []string{"event_type", "channel"})

var NotificationPublishFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "incidentguard_notification_publish_failed_amount",
	Help: "The total number of notification intents that could not be handed to delivery",
})

var AuditEntriesAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentguard_audit_entries_amount",
	Help: "The total number of written audit entries",
}, []string{"action"})

var AuthorizationDeniedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incidentguard_authorization_denied_amount",
	Help: "The total number of denied requests",
}, []string{"permission"})
