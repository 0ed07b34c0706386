package services

import (
	"context"
	"time"

	"elo_server/models"

	"github.com/google/uuid"
)

// DiscoverService consumes a per-viewer candidate queue one profile at a
// time, gated by the daily swipe quota for non-premium accounts and narrowed
// by the viewer's filter set. Filters never mutate the queue; likes and
// passes always remove the unfiltered head.
type DiscoverService struct {
	KV       KVStore
	Notifier Notifier
}

// loadState fetches the viewer's discovery record, seeding it with the
// default deck and quota on first access.
func (ds *DiscoverService) loadState(ctx context.Context, userID string) (*models.DiscoverState, error) {
	var state models.DiscoverState
	found, err := ds.KV.Get(ctx, models.DiscoverKey(userID), &state)
	if err != nil {
		return nil, err
	}
	if !found {
		state = models.DiscoverState{
			Queue:     models.DefaultDeck(),
			Remaining: models.FreeDailySwipes,
			Filters:   models.DefaultFilters(),
		}
		if err := ds.KV.Set(ctx, models.DiscoverKey(userID), state); err != nil {
			return nil, err
		}
	}
	return &state, nil
}

// Filters returns the viewer's stored filter set.
func (ds *DiscoverService) Filters(ctx context.Context, userID string) (models.DiscoverFilters, error) {
	state, err := ds.loadState(ctx, userID)
	if err != nil {
		return models.DiscoverFilters{}, err
	}
	return state.Filters, nil
}

// NextCandidate returns the first queued candidate surviving the given
// filters, or nil when none survives. The remaining swipe count is returned
// alongside for the client's quota banner.
func (ds *DiscoverService) NextCandidate(ctx context.Context, userID string, filters models.DiscoverFilters) (*models.CandidateProfile, int, error) {
	state, err := ds.loadState(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	for i := range state.Queue {
		if matchesFilters(state.Queue[i], filters) {
			candidate := state.Queue[i]
			return &candidate, state.Remaining, nil
		}
	}
	return nil, state.Remaining, nil
}

// Act records a like or pass. It fails with ErrQuotaExceeded for exhausted
// non-premium viewers without touching the queue. On success the unfiltered
// head is removed unconditionally and, for likes, a match event is recorded
// and broadcast.
func (ds *DiscoverService) Act(ctx context.Context, userID, targetUserID, action string, premium bool) (*models.Match, error) {
	if action != "like" && action != "pass" {
		return nil, NewValidationError("Ação inválida")
	}

	state, err := ds.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !premium && state.Remaining <= 0 {
		return nil, ErrQuotaExceeded
	}

	if len(state.Queue) > 0 {
		state.Queue = state.Queue[1:]
	}
	if !premium {
		state.Remaining--
	}
	if err := ds.KV.Set(ctx, models.DiscoverKey(userID), state); err != nil {
		return nil, err
	}

	if action != "like" {
		return nil, nil
	}

	match := models.Match{
		ID:           uuid.NewString(),
		UserID:       userID,
		TargetUserID: targetUserID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := ds.KV.Set(ctx, models.MatchKey(match.ID), match); err != nil {
		return nil, err
	}
	if ds.Notifier != nil {
		ds.Notifier.BroadcastToRoom(targetUserID, "matchCreated", match)
	}
	return &match, nil
}

// UpdateFilters replaces the viewer's filter set. Already-consumed
// candidates are unaffected.
func (ds *DiscoverService) UpdateFilters(ctx context.Context, userID string, filters models.DiscoverFilters) error {
	state, err := ds.loadState(ctx, userID)
	if err != nil {
		return err
	}
	state.Filters = filters
	return ds.KV.Set(ctx, models.DiscoverKey(userID), state)
}

// ResetFilters widens the filter set to its maximum spans. It mutates
// filters only; consumed candidates are never restored.
func (ds *DiscoverService) ResetFilters(ctx context.Context, userID string) (models.DiscoverFilters, error) {
	widest := models.WidestFilters()
	if err := ds.UpdateFilters(ctx, userID, widest); err != nil {
		return models.DiscoverFilters{}, err
	}
	return widest, nil
}

// matchesFilters applies AND semantics across all active filters.
func matchesFilters(candidate models.CandidateProfile, filters models.DiscoverFilters) bool {
	if candidate.Distance > filters.MaxDistance {
		return false
	}
	if candidate.Age < filters.AgeRange[0] || candidate.Age > filters.AgeRange[1] {
		return false
	}
	if filters.Lifestyle.NonSmoker && candidate.Smoker {
		return false
	}
	if filters.Lifestyle.SocialDrinker && !candidate.Drinker {
		return false
	}
	if filters.Lifestyle.Active && !candidate.Sports {
		return false
	}
	return true
}
