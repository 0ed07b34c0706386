package services

import (
	"context"

	"elo_server/models"
)

// ProfileService reads and merge-updates profile records. Updates are
// shallow merges: supplied fields replace stored ones, everything else is
// preserved, and the record id is always re-pinned to the authenticated
// user. The AI companion config update shares these semantics.
type ProfileService struct {
	KV KVStore
}

// GetProfile returns the stored profile, or a default stub when no record
// exists yet.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (map[string]interface{}, error) {
	profile := map[string]interface{}{}
	found, err := ps.KV.Get(ctx, models.UserKey(userID), &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]interface{}{"id": userID, "email": "default", "name": "default"}, nil
	}
	return profile, nil
}

// UpdateProfile merges the supplied fields over the current record and
// writes it back.
func (ps *ProfileService) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (map[string]interface{}, error) {
	current := map[string]interface{}{}
	if _, err := ps.KV.Get(ctx, models.UserKey(userID), &current); err != nil {
		return nil, err
	}

	for field, value := range updates {
		current[field] = value
	}
	current["id"] = userID

	if err := ps.KV.Set(ctx, models.UserKey(userID), current); err != nil {
		return nil, err
	}
	return current, nil
}

// IsPremium reports the account tier used to gate swipe quota and filters.
func (ps *ProfileService) IsPremium(ctx context.Context, userID string) (bool, error) {
	var profile models.UserProfile
	found, err := ps.KV.Get(ctx, models.UserKey(userID), &profile)
	if err != nil {
		return false, err
	}
	return found && profile.IsPremium, nil
}
