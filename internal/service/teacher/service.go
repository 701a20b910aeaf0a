package teacher_service

import (
	"context"
	"errors"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"school-timetable-bot/internal/service"
	"strings"
)

type teacherService struct {
	teacherRepo repository.TeacherRepository
}

func NewTeacherService(teacherRepo repository.TeacherRepository) service.TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
	}
}

func (s *teacherService) AddTeacher(ctx context.Context, firstName, lastName string) (*models.Teacher, error) {
	teacher := &models.Teacher{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if teacher.FirstName == "" || teacher.LastName == "" {
		return nil, errors.New("teacher first and last name are required")
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) GetAllTeachers(ctx context.Context) ([]models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}
