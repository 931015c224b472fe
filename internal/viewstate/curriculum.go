package viewstate

import (
	"context"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// CurriculumLoadErrorMessage is stored when the curriculum page fails to load
const CurriculumLoadErrorMessage = "Có lỗi xảy ra khi tải chương trình đào tạo"

// CurriculumSnapshot is the curriculum page
type CurriculumSnapshot struct {
	Overview resource.State[response.CurriculumOverview]          `json:"overview"`
	Courses  ListSnapshot[models.CurriculumFilter, models.Course] `json:"courses"`
}

// CurriculumView is the curriculum page state
type CurriculumView struct {
	svc      service.CurriculumService
	notifier toast.Notifier
	overview *resource.Resource[struct{}, response.CurriculumOverview]
	courses  *list[models.CurriculumFilter, models.Course]
}

// NewCurriculumView creates a CurriculumView
func NewCurriculumView(svc service.CurriculumService, notifier toast.Notifier, log *logger.Logger) *CurriculumView {
	opts := []resource.Option{resource.WithErrorMessage(CurriculumLoadErrorMessage), resource.WithLogger(log)}
	return &CurriculumView{
		svc:      svc,
		notifier: notifier,
		overview: resource.New(unit(svc.GetOverview), append(opts, resource.WithName("curriculum.overview"), resource.WithNotifier(notifier))...),
		courses: newList(svc.GetCourses, func(c models.Course, k string) bool {
			return containsAny(k, c.Code, c.Name)
		}, notifier, append(opts, resource.WithName("curriculum.courses"))...),
	}
}

// Load fetches the overview and the courses concurrently
func (v *CurriculumView) Load(ctx context.Context) {
	wait(v.overview.Fetch(ctx, struct{}{}), v.courses.fetch(ctx))
}

// SetFilter validates f and reloads the page
func (v *CurriculumView) SetFilter(ctx context.Context, f models.CurriculumFilter) error {
	if err := v.courses.apply(f); err != nil {
		return err
	}
	v.Load(ctx)
	return nil
}

// SetKeyword narrows the fetched courses without fetching again
func (v *CurriculumView) SetKeyword(keyword string) {
	v.courses.setKeyword(keyword)
}

// Course returns one course of the program
func (v *CurriculumView) Course(ctx context.Context, id string) (*models.Course, error) {
	return lookup(v.notifier, CurriculumLoadErrorMessage, func() (*models.Course, error) {
		return v.svc.GetCourse(ctx, id)
	})
}

// Snapshot returns the current state
func (v *CurriculumView) Snapshot() CurriculumSnapshot {
	return CurriculumSnapshot{Overview: v.overview.State(), Courses: v.courses.snapshot()}
}

// Close unmounts the view
func (v *CurriculumView) Close() {
	v.overview.Close()
	v.courses.close()
}
