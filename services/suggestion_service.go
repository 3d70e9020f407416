// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/utils"
	"golang.org/x/time/rate"
)

const (
	maxSuggestionTimeline = 100
	maxSuggestionLength   = 4000
	maxSummaryLength      = 1000
)

// HeuristicSuggester composes advisory texts from the incident and its
// timeline. The output is deterministic for the same input.
type HeuristicSuggester struct{}

var _ shared.RootCauseSuggester = HeuristicSuggester{}

func NewHeuristicSuggester() HeuristicSuggester {
	return HeuristicSuggester{}
}

// lastActivities keeps the newest entries, the input is ordered oldest first.
func lastActivities(activities []models.IncidentActivity, n int) []models.IncidentActivity {
	if len(activities) <= n {
		return activities
	}
	return activities[len(activities)-n:]
}

func (HeuristicSuggester) SuggestRootCause(ctx context.Context, incident models.Incident, activities []models.IncidentActivity) (string, error) {
	activities = lastActivities(activities, maxSuggestionTimeline)

	var b strings.Builder
	fmt.Fprintf(&b, "Suggested root cause for %s incident %q\n\n", incident.Severity, incident.Title)

	var identified, mitigations []string
	reopened, statusChanges := 0, 0
	for _, a := range activities {
		switch a.ActivityType {
		case dtos.ActivityTypeRootCauseIdentified:
			identified = append(identified, utils.SafeDereference(a.Comment))
		case dtos.ActivityTypeMitigation:
			mitigations = append(mitigations, utils.SafeDereference(a.Comment))
		case dtos.ActivityTypeReopened:
			reopened++
		case dtos.ActivityTypeStatusChange:
			statusChanges++
		}
	}

	switch {
	case len(identified) > 0:
		fmt.Fprintf(&b, "Cause: %s\n", identified[len(identified)-1])
	case incident.Description != "":
		fmt.Fprintf(&b, "Cause: likely related to %s\n", utils.FirstSentence(incident.Description))
	default:
		b.WriteString("Cause: not enough information recorded on the timeline.\n")
	}

	if incident.ImpactScope != "" {
		fmt.Fprintf(&b, "Impact: %s\n", incident.ImpactScope)
	}
	if len(mitigations) > 0 {
		fmt.Fprintf(&b, "Mitigations applied: %s\n", strings.Join(mitigations, "; "))
	}
	if reopened > 0 {
		fmt.Fprintf(&b, "Contributing factor: the incident was reopened %d time(s), the first fix did not hold.\n", reopened)
	}
	if statusChanges > 3 {
		fmt.Fprintf(&b, "Contributing factor: %d status changes indicate an unclear ownership during response.\n", statusChanges)
	}

	return utils.Truncate(b.String(), maxSuggestionLength), nil
}

func (HeuristicSuggester) Summarize(ctx context.Context, incident models.Incident, activities []models.IncidentActivity) (string, error) {
	parts := []string{
		fmt.Sprintf("%s incident (%s): %s.", strings.ToUpper(string(incident.Severity)), incident.Status, incident.Title),
	}
	if incident.Description != "" {
		parts = append(parts, utils.FirstSentence(incident.Description))
	}
	if incident.ImpactScope != "" {
		parts = append(parts, "Impact: "+utils.FirstSentence(incident.ImpactScope))
	}
	if n := len(activities); n > 0 {
		parts = append(parts, fmt.Sprintf("%d recorded activities, latest: %s.", n, activities[n-1].Describe()))
	}
	return utils.Truncate(strings.Join(parts, " "), maxSummaryLength), nil
}

const suggestionLimiterCacheSize = 4096

// SuggestionRateLimiter keeps one token bucket per user. Buckets of users
// that went quiet are evicted by the lru.
type SuggestionRateLimiter struct {
	limiters *lru.Cache[uuid.UUID, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

var _ shared.SuggestionLimiter = (*SuggestionRateLimiter)(nil)

func NewSuggestionRateLimiter(perMinute int) (*SuggestionRateLimiter, error) {
	if perMinute <= 0 {
		perMinute = 5
	}
	cache, err := lru.New[uuid.UUID, *rate.Limiter](suggestionLimiterCacheSize)
	if err != nil {
		return nil, err
	}
	return &SuggestionRateLimiter{
		limiters: cache,
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}, nil
}

// NewSuggestionRateLimiterFromEnv reads SUGGESTION_RATE_PER_MINUTE.
func NewSuggestionRateLimiterFromEnv() (*SuggestionRateLimiter, error) {
	raw := shared.GetEnvOrDefault("SUGGESTION_RATE_PER_MINUTE", "5")
	perMinute, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid SUGGESTION_RATE_PER_MINUTE, using default", "value", raw)
		perMinute = 5
	}
	return NewSuggestionRateLimiter(perMinute)
}

func (l *SuggestionRateLimiter) Allow(userID uuid.UUID) bool {
	limiter, ok := l.limiters.Get(userID)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		// a concurrent caller may have added one in the meantime
		if prev, loaded, _ := l.limiters.PeekOrAdd(userID, limiter); loaded {
			limiter = prev
		}
	}
	return limiter.Allow()
}
