package viewstate

import (
	"context"
	"sync"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// Tuition page messages
const (
	TuitionLoadErrorMessage = "Có lỗi xảy ra khi tải thông tin học phí"
	ExportSuccessMessage    = "Xuất file thành công"
	ExportFailureMessage    = "Xuất file thất bại"
)

// TuitionSnapshot is the tuition page
type TuitionSnapshot struct {
	Summary   resource.State[response.TuitionSummary]                `json:"summary"`
	Semesters resource.State[[]string]                               `json:"semesters"`
	List      ListSnapshot[models.TuitionFilter, models.TuitionItem] `json:"list"`
}

// TuitionView is the tuition page state. The summary follows the semester selected in the filter.
type TuitionView struct {
	svc       service.TuitionService
	notifier  toast.Notifier
	summary   *resource.Resource[string, response.TuitionSummary]
	semesters *resource.Resource[struct{}, []string]
	list      *list[models.TuitionFilter, models.TuitionItem]

	mu       sync.Mutex
	semester string
	// initial is the semester shown when no semester is picked
	initial string
}

// NewTuitionView creates a TuitionView showing semester by default
func NewTuitionView(svc service.TuitionService, semester string, notifier toast.Notifier, log *logger.Logger) *TuitionView {
	opts := []resource.Option{resource.WithErrorMessage(TuitionLoadErrorMessage), resource.WithLogger(log)}
	v := &TuitionView{
		svc:      svc,
		notifier: notifier,
		semester: semester,
		initial:  semester,
		summary: resource.New(func(ctx context.Context, sem string) (response.TuitionSummary, error) {
			return deref(svc.GetSummary(ctx, sem))
		}, append(opts, resource.WithName("tuition.summary"), resource.WithNotifier(notifier))...),
		semesters: resource.New(func(ctx context.Context, _ struct{}) ([]string, error) {
			return svc.GetSemesters(ctx)
		}, append(opts, resource.WithName("tuition.semesters"), resource.WithNotifier(notifier))...),
		list: newList(svc.GetList, func(t models.TuitionItem, k string) bool {
			return containsAny(k, t.CourseCode, t.CourseName)
		}, notifier, append(opts, resource.WithName("tuition.list"))...),
	}
	return v
}

func (v *TuitionView) currentSemester() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.semester
}

// Load fetches summary, semesters and list concurrently
func (v *TuitionView) Load(ctx context.Context) {
	wait(
		v.summary.Fetch(ctx, v.currentSemester()),
		v.semesters.Fetch(ctx, struct{}{}),
		v.list.fetch(ctx),
	)
}

// SetFilter validates f and reloads the page. Picking a semester also moves the summary to it;
// going back to all semesters returns the summary to the initial one.
func (v *TuitionView) SetFilter(ctx context.Context, f models.TuitionFilter) error {
	if err := v.list.apply(f); err != nil {
		return err
	}

	f = f.Normalize()
	v.mu.Lock()
	if f.Semester != models.FilterAll {
		v.semester = f.Semester
	} else {
		v.semester = v.initial
	}
	v.mu.Unlock()
	v.Load(ctx)
	return nil
}

// SetKeyword narrows the fetched list without fetching again
func (v *TuitionView) SetKeyword(keyword string) {
	v.list.setKeyword(keyword)
}

// Pay checks the request, pays, then reloads the page
func (v *TuitionView) Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error) {
	if err := checkPayment(v.notifier, req); err != nil {
		return nil, err
	}
	return perform(ctx, v.notifier, payOutcome(), func() (*models.PaymentTransaction, error) {
		return v.svc.Pay(ctx, req)
	}, v.Load)
}

// Export renders the current filter to a spreadsheet and returns its download link
func (v *TuitionView) Export(ctx context.Context) (string, error) {
	filter := v.list.snapshot().Filter
	return perform(ctx, v.notifier, outcome{success: ExportSuccessMessage, failure: ExportFailureMessage}, func() (string, error) {
		return v.svc.ExportHistory(ctx, filter)
	}, nil)
}

// Receipt returns the receipt link of a tuition payment
func (v *TuitionView) Receipt(ctx context.Context, transactionID string) (string, error) {
	return lookup(v.notifier, TuitionLoadErrorMessage, func() (string, error) {
		return v.svc.GetReceiptURL(ctx, transactionID)
	})
}

// Snapshot returns the current state
func (v *TuitionView) Snapshot() TuitionSnapshot {
	return TuitionSnapshot{
		Summary:   v.summary.State(),
		Semesters: v.semesters.State(),
		List:      v.list.snapshot(),
	}
}

// Close unmounts the view
func (v *TuitionView) Close() {
	v.summary.Close()
	v.semesters.Close()
	v.list.close()
}
