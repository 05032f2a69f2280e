package repository

import (
	"context"
	"encoding/json"
	"sort"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// togglePreferenceScript flips a two-valued hash field atomically.
// ARGV: field, default value, alternate value. Returns the new value.
var togglePreferenceScript = redis.NewScript(`
	local current = redis.call('HGET', KEYS[1], ARGV[1])
	if not current then
		current = ARGV[2]
	end
	local nextValue = ARGV[3]
	if current == ARGV[3] then
		nextValue = ARGV[2]
	end
	redis.call('HSET', KEYS[1], ARGV[1], nextValue)
	redis.call('EXPIRE', KEYS[1], ARGV[4])
	return nextValue
`)

// markReadScript removes one id from the unread set and returns the new size.
// SREM of a missing member is a no-op, so the count never drops below zero.
var markReadScript = redis.NewScript(`
	redis.call('SREM', KEYS[1], ARGV[1])
	return redis.call('SCARD', KEYS[1])
`)

type preferenceRepository struct {
	client *redis.Client
}

func NewPreferenceRepository(client *redis.Client) domainRepo.PreferenceRepository {
	return &preferenceRepository{client: client}
}

func (r *preferenceRepository) Get(ctx context.Context, visitorID string) (entity.Preferences, error) {
	prefs := entity.DefaultPreferences()

	var fields *redis.MapStringStringCmd
	var unread *redis.IntCmd
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		fields = pipe.HGetAll(ctx, preferenceKey(visitorID))
		unread = pipe.SCard(ctx, unreadKey(visitorID))
		return nil
	})
	if err != nil {
		return prefs, err
	}

	values := fields.Val()
	if lang, ok := entity.ParseLanguage(values[preferenceFieldLang]); ok {
		prefs.Language = lang
	}
	if theme, ok := entity.ParseTheme(values[preferenceFieldTheme]); ok {
		prefs.Theme = theme
	}
	prefs.UnreadCount = int(unread.Val())

	return prefs, nil
}

func (r *preferenceRepository) SetLanguage(ctx context.Context, visitorID string, language entity.Language) error {
	return r.setField(ctx, visitorID, preferenceFieldLang, string(language))
}

func (r *preferenceRepository) SetTheme(ctx context.Context, visitorID string, theme entity.Theme) error {
	return r.setField(ctx, visitorID, preferenceFieldTheme, string(theme))
}

func (r *preferenceRepository) ToggleLanguage(ctx context.Context, visitorID string) (entity.Language, error) {
	value, err := r.toggle(ctx, visitorID, preferenceFieldLang, string(entity.LanguageVietnamese), string(entity.LanguageEnglish))
	return entity.Language(value), err
}

func (r *preferenceRepository) ToggleTheme(ctx context.Context, visitorID string) (entity.Theme, error) {
	value, err := r.toggle(ctx, visitorID, preferenceFieldTheme, string(entity.ThemeLight), string(entity.ThemeDark))
	return entity.Theme(value), err
}

func (r *preferenceRepository) setField(ctx context.Context, visitorID, field, value string) error {
	key := preferenceKey(visitorID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, value)
		pipe.Expire(ctx, key, visitorStateTTL)
		return nil
	})
	return err
}

func (r *preferenceRepository) toggle(ctx context.Context, visitorID, field, def, alt string) (string, error) {
	keys := []string{preferenceKey(visitorID)}
	return togglePreferenceScript.Run(ctx, r.client, keys, field, def, alt, int(visitorStateTTL.Seconds())).Text()
}

// =============================================================================
// Notifications
// =============================================================================

func (r *preferenceRepository) Notifications(ctx context.Context, visitorID string) ([]entity.Notification, error) {
	var all *redis.MapStringStringCmd
	var unread *redis.StringSliceCmd
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		all = pipe.HGetAll(ctx, notificationKey(visitorID))
		unread = pipe.SMembers(ctx, unreadKey(visitorID))
		return nil
	})
	if err != nil {
		return nil, err
	}

	unreadIDs := make(map[string]struct{}, len(unread.Val()))
	for _, id := range unread.Val() {
		unreadIDs[id] = struct{}{}
	}

	notifications := make([]entity.Notification, 0, len(all.Val()))
	for _, raw := range all.Val() {
		var n entity.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, err
		}
		_, isUnread := unreadIDs[n.ID]
		n.Read = !isUnread
		notifications = append(notifications, n)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *preferenceRepository) AddNotification(ctx context.Context, visitorID string, notification entity.Notification) (int, error) {
	payload, err := json.Marshal(notification)
	if err != nil {
		return 0, err
	}

	var count *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, notificationKey(visitorID), notification.ID, payload)
		pipe.Expire(ctx, notificationKey(visitorID), visitorStateTTL)
		if !notification.Read {
			pipe.SAdd(ctx, unreadKey(visitorID), notification.ID)
			pipe.Expire(ctx, unreadKey(visitorID), visitorStateTTL)
		}
		count = pipe.SCard(ctx, unreadKey(visitorID))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(count.Val()), nil
}

func (r *preferenceRepository) MarkAsRead(ctx context.Context, visitorID string, notificationID string) (int, error) {
	count, err := markReadScript.Run(ctx, r.client, []string{unreadKey(visitorID)}, notificationID).Int()
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *preferenceRepository) MarkAllAsRead(ctx context.Context, visitorID string) error {
	return r.client.Del(ctx, unreadKey(visitorID)).Err()
}

// SetNotifications replaces the visitor's notification list and unread set.
func (r *preferenceRepository) SetNotifications(ctx context.Context, visitorID string, notifications []entity.Notification) (int, error) {
	fields := make([]interface{}, 0, len(notifications)*2)
	unread := make([]interface{}, 0, len(notifications))
	seen := make(map[string]struct{}, len(notifications))
	for _, n := range notifications {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}

		payload, err := json.Marshal(n)
		if err != nil {
			return 0, err
		}
		fields = append(fields, n.ID, payload)
		if !n.Read {
			unread = append(unread, n.ID)
		}
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, notificationKey(visitorID), unreadKey(visitorID))
		if len(fields) > 0 {
			pipe.HSet(ctx, notificationKey(visitorID), fields...)
			pipe.Expire(ctx, notificationKey(visitorID), visitorStateTTL)
		}
		if len(unread) > 0 {
			pipe.SAdd(ctx, unreadKey(visitorID), unread...)
			pipe.Expire(ctx, unreadKey(visitorID), visitorStateTTL)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}
