package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InviteDeduper suppresses repeated invitation dispatches backed by Redis.
// Key format: invite:<fingerprint>
type InviteDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInviteDeduper creates an InviteDeduper wrapping the given Redis client.
func NewInviteDeduper(client *redis.Client, ttl time.Duration) *InviteDeduper {
	return &InviteDeduper{client: client, ttl: ttl}
}

// Seen reports whether an invitation with this fingerprint was already sent
// within the TTL window.
func (d *InviteDeduper) Seen(ctx context.Context, fingerprint string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(fingerprint)).Result()
	if err != nil {
		return false, fmt.Errorf("invite dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this invitation has been dispatched (expires after ttl).
func (d *InviteDeduper) Mark(ctx context.Context, fingerprint string) error {
	return d.client.Set(ctx, d.key(fingerprint), "1", d.ttl).Err()
}

func (d *InviteDeduper) key(fingerprint string) string {
	return "invite:" + fingerprint
}
