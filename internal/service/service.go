package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"billun/internal/cache"
	apperrors "billun/internal/errors"
)

const (
	userCacheTTL = 5 * time.Minute

	lastUpdateKey = "billun:last_update"
)

func userIDCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// userEmailCacheKey keys on the exact stored email, matching the case-sensitive
// lookup and unique index of the users table.
func userEmailCacheKey(email string) string {
	return "user:email:" + email
}

// requireText records a validation problem when value is missing or blank after trimming.
func requireText(verr *apperrors.ValidationError, field string, value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		verr.Add(field, "must not be blank")
		return ""
	}
	return *value
}

// rejectBlank records a validation problem when a supplied value is blank after trimming.
// Absent values are accepted.
func rejectBlank(verr *apperrors.ValidationError, field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		verr.Add(field, "must not be blank")
	}
}

// ChangeTracker records when fleet data was last written so clients polling
// the events endpoint know to refetch.
type ChangeTracker struct {
	cache *cache.Client
	now   func() time.Time
}

// NewChangeTracker creates a tracker storing its stamp in c.
func NewChangeTracker(c *cache.Client) *ChangeTracker {
	return &ChangeTracker{cache: c, now: time.Now}
}

// Touch stores the current time as the last write.
func (t *ChangeTracker) Touch(ctx context.Context) {
	if t == nil {
		return
	}
	stamp := t.now().UTC().Format(time.RFC3339Nano)
	_ = t.cache.Set(ctx, lastUpdateKey, []byte(stamp), 0)
}

// LastUpdate returns the last recorded write, or the current time when none is known.
func (t *ChangeTracker) LastUpdate(ctx context.Context) time.Time {
	if t == nil {
		return time.Now().UTC()
	}
	data, _ := t.cache.Get(ctx, lastUpdateKey)
	if data == nil {
		return t.now().UTC()
	}
	stamp, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return t.now().UTC()
	}
	return stamp
}
