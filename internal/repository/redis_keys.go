package repository

import "time"

const (
	sessionKeyPrefix      = "portal:session:"
	preferenceKeyPrefix   = "portal:prefs:"
	notificationKeyPrefix = "portal:notif:list:"
	unreadKeyPrefix       = "portal:notif:unread:"
	noticeKeyPrefix       = "portal:notices:"
	navigationKeyPrefix   = "portal:nav:"
	formLockKeyPrefix     = "portal:form:inflight:"
	formDraftKeyPrefix    = "portal:form:draft:"
	formAttachmentsPrefix = "portal:form:attachments:"
	preferenceFieldLang   = "language"
	preferenceFieldTheme  = "theme"
	visitorStateTTL       = 30 * 24 * time.Hour
	noticeTTL             = 10 * time.Minute
	formStateTTL          = time.Hour
	submitLockTTL         = 30 * time.Second
)

func sessionKey(visitorID string) string      { return sessionKeyPrefix + visitorID }
func preferenceKey(visitorID string) string   { return preferenceKeyPrefix + visitorID }
func notificationKey(visitorID string) string { return notificationKeyPrefix + visitorID }
func unreadKey(visitorID string) string       { return unreadKeyPrefix + visitorID }
func noticeKey(visitorID string) string       { return noticeKeyPrefix + visitorID }
func navigationKey(visitorID string) string   { return navigationKeyPrefix + visitorID }

// formKey scopes a form instance to the visitor that opened it.
func formKey(prefix, visitorID, formID string) string {
	return prefix + visitorID + ":" + formID
}
