// Package metrics defines and registers all custom Prometheus metrics for
// the userservice extension. It is the single source of truth for metric
// names, labels, and help strings; metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userservice"

// AuthzDeniedTotal counts requests rejected by an authorization stage.
// Label:
//   - stage: "realm", "authentication", "role", or "organization"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied, by authorization stage.",
	},
	[]string{"stage"},
)

// InvitationsTotal counts dispatched invitations.
// Label:
//   - outcome: "invited-existing" or "invited-new"
var InvitationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invitations_total",
		Help:      "Total number of invitations dispatched, by outcome.",
	},
	[]string{"outcome"},
)

// InvitationDedupTotal counts invitation dedup decisions.
// Label:
//   - result: "hit" (duplicate, suppressed) or "miss" (dispatched)
var InvitationDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invitation_dedup_total",
		Help:      "Total number of invitation dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// GroupAssignmentsTotal counts completed group joins.
var GroupAssignmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "group_assignments_total",
		Help:      "Total number of users assigned to groups.",
	},
)
