package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const onboardingTTL = 24 * time.Hour

// Onboarding caches the per-user "has a registered child" flag. A cache miss
// or error is never authoritative; callers fall back to the database.
type Onboarding struct {
	client *redis.Client
}

// NewOnboarding wraps a redis client.
func NewOnboarding(client *redis.Client) *Onboarding {
	return &Onboarding{client: client}
}

func onboardingKey(userID string) string {
	return "onboarding:" + userID
}

// MarkRegistered records that the user completed child registration.
func (o *Onboarding) MarkRegistered(ctx context.Context, userID string) error {
	return o.client.Set(ctx, onboardingKey(userID), "1", onboardingTTL).Err()
}

// HasRegistered reports the cached flag; a missing key is simply false.
func (o *Onboarding) HasRegistered(ctx context.Context, userID string) (bool, error) {
	val, err := o.client.Get(ctx, onboardingKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "1", nil
}
