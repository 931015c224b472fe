package repository

import (
	"student-portal-svc/internal/models"
)

// SemesterPlanRepository defines the interface for semester plan data operations
type SemesterPlanRepository interface {
	GetSemesters() []models.SemesterInfo
	GetSemester(code string) (*models.SemesterInfo, error)
	GetPlannedCourses(semester string) []models.PlannedCourse
	CreatePlannedCourse(course models.PlannedCourse)
}

// semesterPlanRepository implements SemesterPlanRepository
type semesterPlanRepository struct {
	semesters *collection[models.SemesterInfo]
	courses   *collection[models.PlannedCourse]
}

// NewSemesterPlanRepository creates a new instance of SemesterPlanRepository
func NewSemesterPlanRepository(semesters []models.SemesterInfo, courses []models.PlannedCourse) SemesterPlanRepository {
	return &semesterPlanRepository{
		semesters: newCollection(semesters, func(s models.SemesterInfo) string { return s.Code }),
		courses:   newCollection(courses, func(c models.PlannedCourse) string { return c.ID }),
	}
}

// GetSemesters returns every plannable semester
func (r *semesterPlanRepository) GetSemesters() []models.SemesterInfo {
	return r.semesters.all()
}

// GetSemester retrieves a semester by its code
func (r *semesterPlanRepository) GetSemester(code string) (*models.SemesterInfo, error) {
	return r.semesters.find(code)
}

// GetPlannedCourses returns the courses planned for a semester
func (r *semesterPlanRepository) GetPlannedCourses(semester string) []models.PlannedCourse {
	var out []models.PlannedCourse
	for _, c := range r.courses.all() {
		if c.Semester == semester {
			out = append(out, c)
		}
	}
	return out
}

// CreatePlannedCourse appends a planned course
func (r *semesterPlanRepository) CreatePlannedCourse(course models.PlannedCourse) {
	r.courses.add(course)
}
