package timetable

import (
	"errors"
	"fmt"

	"school-timetable-bot/internal/models"
)

var (
	ErrInvalidSession      = errors.New("session index must be between 1 and 8")
	ErrTeacherConflict     = errors.New("teacher already scheduled at this time")
	ErrAllSlotOccupied     = errors.New("class already has a whole-class lesson at this session; no other groups allowed")
	ErrGroupSplitExists    = errors.New("cannot schedule the whole class: group split already exists at this session")
	ErrSessionFull         = errors.New("class already has two group lessons at this session")
	ErrDuplicateGroup      = errors.New("group already scheduled for this class at this session")
	ErrPersistenceConflict = errors.New("an entry for this class, group and slot is already stored")
)

type SessionError struct {
	Session int
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("invalid session %d: must be between %d and %d", e.Session, FirstSession, LastSession)
}

func (e *SessionError) Unwrap() error {
	return ErrInvalidSession
}

// ConflictError - отказ валидатора. Kind - одна из Err* выше,
// Field - поле кандидата, Existing - запись, с которой возник конфликт.
type ConflictError struct {
	Kind     error
	Field    string
	Existing models.TimeEntry
}

func (e *ConflictError) Error() string {
	if e.Kind == ErrDuplicateGroup {
		return fmt.Sprintf("group %q already scheduled for this class at this session", e.Existing.Group.DisplayName())
	}
	return e.Kind.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.Kind
}

// PersistenceError - срабатывание уникального индекса хранилища
// (day, session, school_class, group), когда валидатор запись пропустил.
type PersistenceError struct {
	Entry models.TimeEntry
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPersistenceConflict, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistenceConflict, e.Err}
}
