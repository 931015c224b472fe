package repository

import "student-portal-svc/internal/models"

// Program describes the training program a curriculum belongs to
type Program struct {
	Name         string
	TotalCredits int
}

// CurriculumRepository defines the interface for curriculum data operations
type CurriculumRepository interface {
	GetProgram() Program
	GetCourses() []models.Course
	GetCourseByID(id string) (*models.Course, error)
}

// curriculumRepository implements CurriculumRepository
type curriculumRepository struct {
	program Program
	courses *collection[models.Course]
}

// NewCurriculumRepository creates a new instance of CurriculumRepository
func NewCurriculumRepository(program Program, courses []models.Course) CurriculumRepository {
	return &curriculumRepository{
		program: program,
		courses: newCollection(courses, func(c models.Course) string { return c.ID }).withClone(cloneCourse),
	}
}

// GetProgram returns the program metadata
func (r *curriculumRepository) GetProgram() Program {
	return r.program
}

// GetCourses returns every course of the program
func (r *curriculumRepository) GetCourses() []models.Course {
	return r.courses.all()
}

// GetCourseByID retrieves a course by ID
func (r *curriculumRepository) GetCourseByID(id string) (*models.Course, error) {
	return r.courses.find(id)
}
