package repository

import "student-portal-svc/internal/models"

// StudentRepository defines the interface for mock student accounts
type StudentRepository interface {
	GetStudentByID(studentID string) (*models.Student, error)
}

// studentRepository implements StudentRepository
type studentRepository struct {
	students *collection[models.Student]
}

// NewStudentRepository creates a new instance of StudentRepository
func NewStudentRepository(items []models.Student) StudentRepository {
	return &studentRepository{
		students: newCollection(items, func(s models.Student) string { return s.StudentID }).withClone(cloneStudent),
	}
}

// GetStudentByID retrieves a student by student ID
func (r *studentRepository) GetStudentByID(studentID string) (*models.Student, error) {
	return r.students.find(studentID)
}
