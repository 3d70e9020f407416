package statemachine

import (
	"fmt"
	"os"
	"strings"

	"github.com/l3montree-dev/incidentguard/dtos"
)

// TransitionPolicy decides whether an incident may move between two
// different statuses.
type TransitionPolicy interface {
	Allowed(from, to dtos.IncidentStatus) bool
}

// AllowAll accepts every transition.
type AllowAll struct{}

func (AllowAll) Allowed(from, to dtos.IncidentStatus) bool {
	return true
}

type transition struct {
	from, to dtos.IncidentStatus
}

// ForbiddenTransitions rejects the listed pairs and accepts the rest.
type ForbiddenTransitions map[transition]struct{}

func (f ForbiddenTransitions) Allowed(from, to dtos.IncidentStatus) bool {
	_, forbidden := f[transition{from: from, to: to}]
	return !forbidden
}

// ParseForbiddenTransitions reads a comma separated list like
// "closed->investigating,closed->open".
func ParseForbiddenTransitions(s string) (ForbiddenTransitions, error) {
	res := ForbiddenTransitions{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		from, to, ok := strings.Cut(pair, "->")
		if !ok {
			return nil, fmt.Errorf("invalid transition %q, expected from->to", pair)
		}
		f := dtos.IncidentStatus(strings.TrimSpace(from))
		t := dtos.IncidentStatus(strings.TrimSpace(to))
		if !f.IsValid() || !t.IsValid() {
			return nil, fmt.Errorf("invalid transition %q, unknown status", pair)
		}
		res[transition{from: f, to: t}] = struct{}{}
	}
	return res, nil
}

// PolicyFromEnv reads INCIDENT_FORBIDDEN_TRANSITIONS. An empty value allows
// every transition.
func PolicyFromEnv() (TransitionPolicy, error) {
	raw := os.Getenv("INCIDENT_FORBIDDEN_TRANSITIONS")
	if strings.TrimSpace(raw) == "" {
		return AllowAll{}, nil
	}
	policy, err := ParseForbiddenTransitions(raw)
	if err != nil {
		return nil, err
	}
	return policy, nil
}
