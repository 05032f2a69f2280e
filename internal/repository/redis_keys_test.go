package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPrefixesAreDisjoint(t *testing.T) {
	prefixes := []string{
		sessionKeyPrefix,
		preferenceKeyPrefix,
		notificationKeyPrefix,
		unreadKeyPrefix,
		noticeKeyPrefix,
		navigationKeyPrefix,
		formLockKeyPrefix,
		formDraftKeyPrefix,
		formAttachmentsPrefix,
	}
	for i, a := range prefixes {
		for j, b := range prefixes {
			if i != j {
				assert.False(t, strings.HasPrefix(a, b), "%q starts with %q", a, b)
			}
		}
	}

	assert.NotEqual(t, unreadKey("x"), notificationKey("unread:x"))
	assert.NotEqual(t, formKey(formLockKeyPrefix, "v1", "f"), formKey(formLockKeyPrefix, "v2", "f"))
}
