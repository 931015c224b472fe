package viewstate

import (
	"context"
	"strings"
	"sync"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// Semester plan page messages
const (
	PlanLoadErrorMessage      = "Có lỗi xảy ra khi tải kế hoạch học tập"
	PlanAddSuccessMessage     = "Đã thêm học phần vào kế hoạch"
	PlanAddFailureMessage     = "Không thể thêm học phần"
	PlanCreditLimitMessage    = "Vượt quá số tín chỉ tối đa của học kỳ"
	PlanDuplicateMessage      = "Học phần đã có trong kế hoạch"
	PlanMissingCourseMessage  = "Vui lòng nhập mã và tên học phần"
	PlanInvalidCreditsMessage = "Số tín chỉ không hợp lệ"
)

// SemesterPlanSnapshot is the semester plan page
type SemesterPlanSnapshot struct {
	Selected  string                                        `json:"selected"`
	Semesters resource.State[[]models.SemesterInfo]         `json:"semesters"`
	Plan      resource.State[response.SemesterPlanResponse] `json:"plan"`
}

// SemesterPlanView is the semester plan page state
type SemesterPlanView struct {
	svc       service.SemesterPlanService
	notifier  toast.Notifier
	semesters *resource.Resource[struct{}, []models.SemesterInfo]
	plan      *resource.Resource[string, response.SemesterPlanResponse]

	mu       sync.Mutex
	selected string
}

// NewSemesterPlanView creates a SemesterPlanView starting on semester
func NewSemesterPlanView(svc service.SemesterPlanService, semester string, notifier toast.Notifier, log *logger.Logger) *SemesterPlanView {
	opts := []resource.Option{resource.WithErrorMessage(PlanLoadErrorMessage), resource.WithLogger(log), resource.WithNotifier(notifier)}
	return &SemesterPlanView{
		svc:      svc,
		notifier: notifier,
		selected: semester,
		semesters: resource.New(func(ctx context.Context, _ struct{}) ([]models.SemesterInfo, error) {
			return svc.GetSemesters(ctx)
		}, append(opts, resource.WithName("plan.semesters"))...),
		plan: resource.New(func(ctx context.Context, sem string) (response.SemesterPlanResponse, error) {
			return deref(svc.GetPlan(ctx, sem))
		}, append(opts, resource.WithName("plan.detail"))...),
	}
}

// Selected returns the semester being planned
func (v *SemesterPlanView) Selected() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// Load fetches the semester list and the selected plan concurrently
func (v *SemesterPlanView) Load(ctx context.Context) {
	wait(v.semesters.Fetch(ctx, struct{}{}), v.plan.Fetch(ctx, v.Selected()))
}

// Select switches to another semester and reloads the page
func (v *SemesterPlanView) Select(ctx context.Context, semester string) {
	v.mu.Lock()
	v.selected = semester
	v.mu.Unlock()
	v.Load(ctx)
}

// AddCourse checks the course against the loaded plan, adds it, then reloads the plan
func (v *SemesterPlanView) AddCourse(ctx context.Context, req models.AddPlannedCourseRequest) (*models.PlannedCourse, error) {
	if strings.TrimSpace(req.CourseCode) == "" || strings.TrimSpace(req.CourseName) == "" {
		return nil, reject(v.notifier, PlanMissingCourseMessage)
	}
	if req.Credits <= 0 {
		return nil, reject(v.notifier, PlanInvalidCreditsMessage)
	}
	if st := v.plan.State(); st.Data != nil && st.Data.Semester == v.Selected() {
		if st.Data.TotalCredits+req.Credits > st.Data.MaxCredits {
			return nil, reject(v.notifier, PlanCreditLimitMessage)
		}
	}

	semester := v.Selected()
	o := outcome{
		success: PlanAddSuccessMessage,
		failure: PlanAddFailureMessage,
		specific: map[error]string{
			service.ErrCreditLimitExceeded: PlanCreditLimitMessage,
			service.ErrDuplicateCourse:     PlanDuplicateMessage,
			repository.ErrRecordNotFound:   NotFoundMessage,
		},
	}
	return perform(ctx, v.notifier, o, func() (*models.PlannedCourse, error) {
		return v.svc.AddCourse(ctx, semester, req)
	}, func(ctx context.Context) {
		v.plan.Load(ctx, semester)
	})
}

// Snapshot returns the current state
func (v *SemesterPlanView) Snapshot() SemesterPlanSnapshot {
	return SemesterPlanSnapshot{
		Selected:  v.Selected(),
		Semesters: v.semesters.State(),
		Plan:      v.plan.State(),
	}
}

// Close unmounts the view
func (v *SemesterPlanView) Close() {
	v.semesters.Close()
	v.plan.Close()
}
