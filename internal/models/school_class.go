package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	MinClassNumber = 5
	MaxClassNumber = 11
)

// SchoolClass - класс (параллель + буква), например 6A
type SchoolClass struct {
	ID        int64     `db:"id" json:"id"`
	Number    int       `db:"number" json:"number"`
	Letter    string    `db:"letter" json:"letter"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (c SchoolClass) String() string {
	return fmt.Sprintf("%d%s", c.Number, c.Letter)
}

// Validate проверяет номер параллели и букву
func (c SchoolClass) Validate() error {
	if c.Number < MinClassNumber || c.Number > MaxClassNumber {
		return fmt.Errorf("class number %d is out of range %d..%d", c.Number, MinClassNumber, MaxClassNumber)
	}
	if utf8.RuneCountInString(c.Letter) != 1 {
		return fmt.Errorf("class letter must be a single character, got %q", c.Letter)
	}
	return nil
}

// ParseClassName разбирает строку вида "6A" или "11Б"
func ParseClassName(name string) (int, string, error) {
	name = strings.TrimSpace(name)
	split := strings.IndexFunc(name, func(r rune) bool { return !unicode.IsDigit(r) })
	if split <= 0 {
		return 0, "", fmt.Errorf("invalid class name %q", name)
	}

	number, err := strconv.Atoi(name[:split])
	if err != nil {
		return 0, "", fmt.Errorf("invalid class name %q: %w", name, err)
	}

	class := SchoolClass{Number: number, Letter: strings.ToUpper(name[split:])}
	if err := class.Validate(); err != nil {
		return 0, "", err
	}
	return class.Number, class.Letter, nil
}
