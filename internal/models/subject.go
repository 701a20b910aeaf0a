package models

import "fmt"

type SubjectCode string

const (
	SubjectMath      SubjectCode = "math"
	SubjectPhysics   SubjectCode = "physics"
	SubjectChemistry SubjectCode = "chemistry"
	SubjectBiology   SubjectCode = "biology"
	SubjectEnglish   SubjectCode = "english"
	SubjectHistory   SubjectCode = "history"
	SubjectGeography SubjectCode = "geography"
	SubjectIT        SubjectCode = "it"
)

// SubjectCodes - фиксированный перечень предметов в порядке отображения
var SubjectCodes = []SubjectCode{
	SubjectMath,
	SubjectPhysics,
	SubjectChemistry,
	SubjectBiology,
	SubjectEnglish,
	SubjectHistory,
	SubjectGeography,
	SubjectIT,
}

var subjectNames = map[SubjectCode]string{
	SubjectMath:      "Mathematics",
	SubjectPhysics:   "Physics",
	SubjectChemistry: "Chemistry",
	SubjectBiology:   "Biology",
	SubjectEnglish:   "English",
	SubjectHistory:   "History",
	SubjectGeography: "Geography",
	SubjectIT:        "Information Technology",
}

func (c SubjectCode) Valid() bool {
	_, ok := subjectNames[c]
	return ok
}

// DisplayName возвращает название предмета, для неизвестного кода - сам код
func (c SubjectCode) DisplayName() string {
	if name, ok := subjectNames[c]; ok {
		return name
	}
	return string(c)
}

func ParseSubjectCode(s string) (SubjectCode, error) {
	code := SubjectCode(s)
	if !code.Valid() {
		return "", fmt.Errorf("unknown subject %q", s)
	}
	return code, nil
}

type Subject struct {
	ID   int64       `db:"id" json:"id"`
	Code SubjectCode `db:"name" json:"name"`
}

func (s Subject) String() string {
	return s.Code.DisplayName()
}
