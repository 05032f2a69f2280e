package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"charity-care-portal/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func notification(id string, read bool, at time.Time) entity.Notification {
	return entity.Notification{
		ID:        id,
		Type:      entity.NotificationSystem,
		Title:     "Title " + id,
		Message:   "Message " + id,
		Read:      read,
		CreatedAt: at,
	}
}

// ==========================
// Session
// ==========================

func TestSessionRepository_GetMissing(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	session, err := repo.Get(context.Background(), "v1")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_LoginReplacesIdentity(t *testing.T) {
	client, mr := setupRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Login(ctx, "v1", &entity.Session{UserID: "u1", Role: entity.RolePatient}))
	require.NoError(t, repo.Login(ctx, "v1", &entity.Session{UserID: "u2", Role: entity.RoleDoctor}))

	session, err := repo.Get(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u2", session.UserID)
	assert.Equal(t, entity.RoleDoctor, session.Role)
	assert.Equal(t, time.Hour, mr.TTL(sessionKey("v1")))
}

func TestSessionRepository_LoginClearsNotifications(t *testing.T) {
	client, _ := setupRedis(t)
	sessions := NewSessionRepository(client, time.Hour)
	prefs := NewPreferenceRepository(client)
	ctx := context.Background()

	_, err := prefs.AddNotification(ctx, "v1", notification("n1", false, time.Now()))
	require.NoError(t, err)
	require.NoError(t, prefs.SetLanguage(ctx, "v1", entity.LanguageEnglish))

	require.NoError(t, sessions.Login(ctx, "v1", &entity.Session{UserID: "u1", Role: entity.RoleAdmin}))

	got, err := prefs.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.UnreadCount)
	assert.Equal(t, entity.LanguageEnglish, got.Language)

	list, err := prefs.Notifications(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionRepository_Logout(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Login(ctx, "v1", &entity.Session{UserID: "u1", Role: entity.RolePatient}))
	require.NoError(t, repo.Logout(ctx, "v1"))

	session, err := repo.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, session)
}

// ==========================
// Preferences
// ==========================

func TestPreferenceRepository_Defaults(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewPreferenceRepository(client)

	prefs, err := repo.Get(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)
}

func TestPreferenceRepository_ToggleTwiceRestores(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()

	theme, err := repo.ToggleTheme(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, theme)
	theme, err = repo.ToggleTheme(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, theme)

	lang, err := repo.ToggleLanguage(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageEnglish, lang)
	lang, err = repo.ToggleLanguage(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageVietnamese, lang)

	prefs, err := repo.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)
}

func TestPreferenceRepository_ConcurrentTogglesAreNotLost(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ToggleTheme(ctx, "v1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	prefs, err := repo.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, prefs.Theme)
}

func TestPreferenceRepository_MarkAsReadFloorsAtZero(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()

	count, err := repo.MarkAsRead(ctx, "v1", "missing")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	prefs, err := repo.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 0, prefs.UnreadCount)
}

func TestPreferenceRepository_NotificationLifecycle(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	count, err := repo.SetNotifications(ctx, "v1", []entity.Notification{
		notification("n1", false, now.Add(-2*time.Hour)),
		notification("n2", true, now.Add(-time.Hour)),
		notification("n3", false, now),
		notification("n3", false, now),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := repo.Notifications(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n3", list[0].ID)
	assert.False(t, list[0].Read)
	assert.True(t, list[1].Read)

	count, err = repo.MarkAsRead(ctx, "v1", "n3")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.MarkAsRead(ctx, "v1", "n3")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.AddNotification(ctx, "v1", notification("n4", false, now.Add(time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.MarkAllAsRead(ctx, "v1"))
	prefs, err := repo.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 0, prefs.UnreadCount)
}

// ==========================
// Visitor state
// ==========================

func TestVisitorRepository_NoticesAreDeliveredOnce(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewVisitorRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.PushNotice(ctx, "v1", entity.Notice{Level: entity.NoticeError, Key: entity.NoticeInsufficientPermissions}))
	require.NoError(t, repo.PushNotice(ctx, "v1", entity.Notice{Level: entity.NoticeSuccess, Key: entity.NoticeLoginSuccess}))

	notices, err := repo.PopNotices(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, entity.NoticeInsufficientPermissions, notices[0].Key)

	notices, err = repo.PopNotices(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, notices)
}

func TestVisitorRepository_LatestNavigationWins(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewVisitorRepository(client)
	ctx := context.Background()

	first, err := repo.BeginNavigation(ctx, "v1")
	require.NoError(t, err)
	second, err := repo.BeginNavigation(ctx, "v1")
	require.NoError(t, err)

	latest, err := repo.IsLatestNavigation(ctx, "v1", first)
	require.NoError(t, err)
	assert.False(t, latest)

	latest, err = repo.IsLatestNavigation(ctx, "v1", second)
	require.NoError(t, err)
	assert.True(t, latest)
}

// ==========================
// Form state
// ==========================

func TestFormStateRepository_SubmitLock(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewFormStateRepository(client)
	ctx := context.Background()

	ok, err := repo.AcquireSubmit(ctx, "v1", "f1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireSubmit(ctx, "v1", "f1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.AcquireSubmit(ctx, "v1", "f2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireSubmit(ctx, "v2", "f1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.ReleaseSubmit(ctx, "v1", "f1"))
	ok, err = repo.AcquireSubmit(ctx, "v1", "f1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFormStateRepository_DraftAndAttachments(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewFormStateRepository(client)
	ctx := context.Background()

	type draft struct {
		Amount string `json:"amount"`
	}

	var loaded draft
	found, err := repo.LoadDraft(ctx, "v1", "f1", &loaded)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveDraft(ctx, "v1", "f1", draft{Amount: "500000"}))
	found, err = repo.LoadDraft(ctx, "v1", "f1", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "500000", loaded.Amount)

	files := []entity.Attachment{{Name: "scan.pdf", Size: 4, MIME: "application/pdf", Fingerprint: 42, Content: []byte("%PDF")}}
	require.NoError(t, repo.SaveAttachments(ctx, "v1", "f1", files))
	got, err := repo.LoadAttachments(ctx, "v1", "f1")
	require.NoError(t, err)
	assert.Equal(t, files, got)

	other, err := repo.LoadAttachments(ctx, "v2", "f1")
	require.NoError(t, err)
	assert.Empty(t, other)
	found, err = repo.LoadDraft(ctx, "v2", "f1", &draft{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Clear(ctx, "v1", "f1"))
	got, err = repo.LoadAttachments(ctx, "v1", "f1")
	require.NoError(t, err)
	assert.Empty(t, got)
	found, err = repo.LoadDraft(ctx, "v1", "f1", &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}
