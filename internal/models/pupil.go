package models

import (
	"fmt"
	"strings"
	"time"
)

type Pupil struct {
	ID            int64     `db:"id" json:"id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	SchoolClassID int64     `db:"school_class_id" json:"school_class_id"`
	Group         *Group    `db:"group" json:"group"` // nil - без деления на группы
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	// Joined fields
	ClassName string `db:"class_name" json:"class_name,omitempty"`
}

func (p Pupil) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Validate проверяет обязательные поля ученика
func (p Pupil) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("pupil first and last name are required")
	}
	if p.SchoolClassID == 0 {
		return fmt.Errorf("pupil school class is required")
	}
	if p.Group != nil && *p.Group != GroupOne && *p.Group != GroupTwo {
		return fmt.Errorf("pupil group must be %q or %q, got %q", GroupOne, GroupTwo, *p.Group)
	}
	return nil
}
