package pupil_service

import (
	"context"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"school-timetable-bot/internal/service"
	"strings"
)

// SearchLimit - максимум учеников в результате поиска
const SearchLimit = 50

type pupilService struct {
	pupilRepo repository.PupilRepository
	classRepo repository.SchoolClassRepository
}

func NewPupilService(pupilRepo repository.PupilRepository, classRepo repository.SchoolClassRepository) service.PupilService {
	return &pupilService{
		pupilRepo: pupilRepo,
		classRepo: classRepo,
	}
}

func (s *pupilService) AddPupil(ctx context.Context, pupil *models.Pupil) error {
	pupil.FirstName = strings.TrimSpace(pupil.FirstName)
	pupil.LastName = strings.TrimSpace(pupil.LastName)
	if err := pupil.Validate(); err != nil {
		return err
	}

	class, err := s.classRepo.GetByID(ctx, pupil.SchoolClassID)
	if err != nil {
		return err
	}
	if class == nil {
		return service.ErrClassNotFound
	}

	if err := s.pupilRepo.Create(ctx, pupil); err != nil {
		return err
	}
	pupil.ClassName = class.String()
	return nil
}

func (s *pupilService) SearchPupils(ctx context.Context, query string) ([]models.Pupil, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return s.pupilRepo.Search(ctx, query, SearchLimit)
}

func (s *pupilService) GetClassPupils(ctx context.Context, classID int64) ([]models.Pupil, error) {
	return s.pupilRepo.GetByClass(ctx, classID)
}
