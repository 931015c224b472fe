package models

// Course types
const (
	CourseRequired = "required"
	CourseElective = "elective"
	CourseGeneral  = "general"
)

// Course progress
const (
	CourseCompleted  = "completed"
	CourseInProgress = "in_progress"
	CourseNotStarted = "not_started"
)

// Course is one entry of the training program
type Course struct {
	ID            string   `json:"id" example:"crs-001"`
	Code          string   `json:"code" example:"INT1008"`
	Name          string   `json:"name" example:"Nhập môn lập trình"`
	Credits       int      `json:"credits" example:"3"`
	Semester      int      `json:"semester" example:"1"`
	CourseType    string   `json:"course_type" example:"required"`
	Prerequisites []string `json:"prerequisites"`
	Description   string   `json:"description" example:"Các khái niệm cơ bản về lập trình"`
	Status        string   `json:"status" example:"completed"`
	Grade         *float64 `json:"grade,omitempty" example:"8.5"`
}

// CurriculumFilter selects courses. Semester 0 means every semester.
type CurriculumFilter struct {
	Semester   int    `json:"semester" form:"semester" validate:"min=0,max=10"`
	CourseType string `json:"course_type" form:"course_type" validate:"oneof=all required elective general"`
	Status     string `json:"status" form:"status" validate:"oneof=all completed in_progress not_started"`
}

// Normalize fills empty fields with "all"
func (f CurriculumFilter) Normalize() CurriculumFilter {
	f.CourseType = orAll(f.CourseType)
	f.Status = orAll(f.Status)
	return f
}

// Match reports whether c passes the filter
func (f CurriculumFilter) Match(c Course) bool {
	if f.Semester != 0 && f.Semester != c.Semester {
		return false
	}
	return matches(f.CourseType, c.CourseType) && matches(f.Status, c.Status)
}
