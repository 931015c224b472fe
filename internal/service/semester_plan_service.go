package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// Semester plan rejections
var (
	ErrCreditLimitExceeded = fmt.Errorf("%w: credit limit exceeded", ErrValidation)
	ErrDuplicateCourse     = fmt.Errorf("%w: course already planned", ErrValidation)
)

// SemesterPlanService defines the interface for semester planning operations
type SemesterPlanService interface {
	GetSemesters(ctx context.Context) ([]models.SemesterInfo, error)
	GetPlan(ctx context.Context, semester string) (*response.SemesterPlanResponse, error)
	AddCourse(ctx context.Context, semester string, req models.AddPlannedCourseRequest) (*models.PlannedCourse, error)
}

// semesterPlanService implements SemesterPlanService
type semesterPlanService struct {
	planRepo  repository.SemesterPlanRepository
	transport *transport.Transport
	clock     Clock
	logger    *logger.Logger

	// serialises the credit check with the insert
	mu sync.Mutex
}

// NewSemesterPlanService creates a new instance of SemesterPlanService
func NewSemesterPlanService(planRepo repository.SemesterPlanRepository, t *transport.Transport, clock Clock, logger *logger.Logger) SemesterPlanService {
	return &semesterPlanService{
		planRepo:  planRepo,
		transport: t,
		clock:     clockOrNow(clock),
		logger:    logger,
	}
}

// GetSemesters lists the semesters a plan can be built for
func (s *semesterPlanService) GetSemesters(ctx context.Context) ([]models.SemesterInfo, error) {
	return call(ctx, s.transport, transport.Get(PathPlanSemesters, transport.Light), func() []models.SemesterInfo {
		return s.planRepo.GetSemesters()
	})
}

// GetPlan returns a semester's planned courses and credit budget
func (s *semesterPlanService) GetPlan(ctx context.Context, semester string) (*response.SemesterPlanResponse, error) {
	return transport.Call(ctx, s.transport, transport.Get(PathPlanDetail, transport.Normal), func() (*response.SemesterPlanResponse, error) {
		return s.plan(semester)
	})
}

func (s *semesterPlanService) plan(semester string) (*response.SemesterPlanResponse, error) {
	info, err := s.planRepo.GetSemester(semester)
	if err != nil {
		return nil, fmt.Errorf("semester %s: %w", semester, err)
	}

	courses := s.planRepo.GetPlannedCourses(semester)
	if courses == nil {
		courses = []models.PlannedCourse{}
	}

	plan := &response.SemesterPlanResponse{
		Semester:   info.Code,
		Name:       info.Name,
		Courses:    courses,
		MaxCredits: info.MaxCredits,
		MinCredits: info.MinCredits,
	}
	for _, c := range courses {
		plan.TotalCredits += c.Credits
	}
	return plan, nil
}

// AddCourse places a course in a semester plan. The plan must stay within its credit cap
// and must not already hold the course code.
func (s *semesterPlanService) AddCourse(ctx context.Context, semester string, req models.AddPlannedCourseRequest) (*models.PlannedCourse, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	return transport.Call(ctx, s.transport, transport.Post(PathPlanAddCourse, transport.Normal), func() (*models.PlannedCourse, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		plan, err := s.plan(semester)
		if err != nil {
			return nil, err
		}

		for _, c := range plan.Courses {
			if strings.EqualFold(c.CourseCode, req.CourseCode) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCourse, req.CourseCode)
			}
		}
		if plan.TotalCredits+req.Credits > plan.MaxCredits {
			s.logger.WithFields(map[string]interface{}{
				"semester":    semester,
				"planned":     plan.TotalCredits,
				"requested":   req.Credits,
				"max_credits": plan.MaxCredits,
			}).Warn("Credit limit exceeded")
			return nil, fmt.Errorf("%w: %d + %d > %d", ErrCreditLimitExceeded, plan.TotalCredits, req.Credits, plan.MaxCredits)
		}

		course := models.PlannedCourse{
			ID:         newID("plan"),
			Semester:   plan.Semester,
			CourseCode: strings.ToUpper(req.CourseCode),
			CourseName: req.CourseName,
			Credits:    req.Credits,
			Schedule:   req.Schedule,
			Instructor: req.Instructor,
			Status:     models.PlanPlanned,
			AddedAt:    s.clock(),
		}
		s.planRepo.CreatePlannedCourse(course)

		s.logger.WithFields(map[string]interface{}{
			"semester":    semester,
			"course_code": course.CourseCode,
		}).Info("Course added to plan")

		return &course, nil
	})
}
