package subject_service

import (
	"context"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"school-timetable-bot/internal/service"
)

type subjectService struct {
	subjectRepo repository.SubjectRepository
}

func NewSubjectService(subjectRepo repository.SubjectRepository) service.SubjectService {
	return &subjectService{
		subjectRepo: subjectRepo,
	}
}

func (s *subjectService) GetSubjectByCode(ctx context.Context, code models.SubjectCode) (*models.Subject, error) {
	if !code.Valid() {
		return nil, service.ErrSubjectNotFound
	}

	subject, err := s.subjectRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, service.ErrSubjectNotFound
	}
	return subject, nil
}

func (s *subjectService) GetAllSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}
