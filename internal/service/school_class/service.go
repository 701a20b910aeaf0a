package school_class_service

import (
	"context"
	"errors"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"school-timetable-bot/internal/service"
	"strings"
)

type schoolClassService struct {
	classRepo repository.SchoolClassRepository
}

func NewSchoolClassService(classRepo repository.SchoolClassRepository) service.SchoolClassService {
	return &schoolClassService{
		classRepo: classRepo,
	}
}

func (s *schoolClassService) CreateClass(ctx context.Context, number int, letter string) (*models.SchoolClass, error) {
	class := &models.SchoolClass{Number: number, Letter: strings.ToUpper(strings.TrimSpace(letter))}
	if err := class.Validate(); err != nil {
		return nil, err
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, mapUnique(err)
	}
	return class, nil
}

func (s *schoolClassService) RenameClass(ctx context.Context, id int64, number int, letter string) error {
	class := models.SchoolClass{Number: number, Letter: strings.ToUpper(strings.TrimSpace(letter))}
	if err := class.Validate(); err != nil {
		return err
	}

	existing, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return service.ErrClassNotFound
	}

	return mapUnique(s.classRepo.Rename(ctx, id, class.Number, class.Letter))
}

// mapUnique - пара (номер, буква) уже занята другим классом
func mapUnique(err error) error {
	if errors.Is(err, repository.ErrUniqueViolation) {
		return service.ErrClassExists
	}
	return err
}

func (s *schoolClassService) GetClassByName(ctx context.Context, name string) (*models.SchoolClass, error) {
	number, letter, err := models.ParseClassName(name)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByNumberLetter(ctx, number, letter)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, service.ErrClassNotFound
	}
	return class, nil
}

func (s *schoolClassService) GetAllClasses(ctx context.Context) ([]models.SchoolClass, error) {
	return s.classRepo.GetAll(ctx)
}
