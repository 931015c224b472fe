package service

import (
	"context"
	"fmt"
	"math"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// CurriculumService defines the interface for curriculum operations
type CurriculumService interface {
	GetOverview(ctx context.Context) (*response.CurriculumOverview, error)
	GetCourses(ctx context.Context, filter models.CurriculumFilter) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
}

// curriculumService implements CurriculumService
type curriculumService struct {
	curriculumRepo repository.CurriculumRepository
	transport      *transport.Transport
	logger         *logger.Logger
}

// NewCurriculumService creates a new instance of CurriculumService
func NewCurriculumService(curriculumRepo repository.CurriculumRepository, t *transport.Transport, logger *logger.Logger) CurriculumService {
	return &curriculumService{
		curriculumRepo: curriculumRepo,
		transport:      t,
		logger:         logger,
	}
}

// GetOverview derives credit progress and GPA from the course list
func (s *curriculumService) GetOverview(ctx context.Context) (*response.CurriculumOverview, error) {
	return call(ctx, s.transport, transport.Get(PathCurriculumSummary, transport.Light), func() *response.CurriculumOverview {
		program := s.curriculumRepo.GetProgram()
		overview := &response.CurriculumOverview{
			Program:      program.Name,
			TotalCredits: program.TotalCredits,
		}

		var weighted float64
		var graded int
		for _, c := range s.curriculumRepo.GetCourses() {
			overview.CourseCount++
			switch c.Status {
			case models.CourseCompleted:
				overview.CompletedCredits += c.Credits
			case models.CourseInProgress:
				overview.InProgress += c.Credits
			}
			if c.Grade != nil {
				weighted += *c.Grade * float64(c.Credits)
				graded += c.Credits
			}
		}

		overview.RemainingCredits = program.TotalCredits - overview.CompletedCredits
		if overview.RemainingCredits < 0 {
			overview.RemainingCredits = 0
		}
		if graded > 0 {
			overview.GPA = math.Round(weighted/float64(graded)*100) / 100
		}
		return overview
	})
}

// GetCourses returns the courses matching filter
func (s *curriculumService) GetCourses(ctx context.Context, filter models.CurriculumFilter) ([]models.Course, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathCurriculumCourses, transport.Normal), func() []models.Course {
		out := []models.Course{}
		for _, c := range s.curriculumRepo.GetCourses() {
			if filter.Match(c) {
				out = append(out, c)
			}
		}
		return out
	})
}

// GetCourse retrieves one course
func (s *curriculumService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return transport.Call(ctx, s.transport, transport.Get(PathCurriculumCourse, transport.Light), func() (*models.Course, error) {
		course, err := s.curriculumRepo.GetCourseByID(id)
		if err != nil {
			s.logger.WithError(err).WithField("course_id", id).Error("Failed to get course")
			return nil, fmt.Errorf("course %s: %w", id, err)
		}
		return course, nil
	})
}
