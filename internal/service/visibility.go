package service

import (
	"errors"

	"charity-care-portal/internal/domain/entity"
)

var ErrNoSession = errors.New("no active session")

type visibilityRule func(entity.Record) bool

type visibilitySwitch struct {
	userID string
}

func (v visibilitySwitch) Patient() visibilityRule {
	return func(r entity.Record) bool { return r.OwnerID() == v.userID }
}

func (v visibilitySwitch) Doctor() visibilityRule {
	return func(r entity.Record) bool { return r.AssignedTo(v.userID) }
}

func (v visibilitySwitch) Admin() visibilityRule {
	return func(entity.Record) bool { return true }
}

func (v visibilitySwitch) CharityAdmin() visibilityRule {
	return func(r entity.Record) bool { return r.FinanciallyFlagged() }
}

// FilterVisible keeps the records the session may see. Every page listing a
// record type goes through here, dashboards included.
func FilterVisible[T entity.Record](session *entity.Session, records []T) ([]T, error) {
	if session == nil {
		return nil, ErrNoSession
	}

	visible, err := entity.MatchRole[visibilityRule](session.Role, visibilitySwitch{userID: session.UserID})
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for _, record := range records {
		if visible(record) {
			out = append(out, record)
		}
	}
	return out, nil
}
