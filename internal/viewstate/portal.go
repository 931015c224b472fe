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

// DashboardLoadErrorMessage is stored when the home page fails to load
const DashboardLoadErrorMessage = "Có lỗi xảy ra khi tải trang chủ"

// Services groups the domain services a portal talks to
type Services struct {
	Tuition       service.TuitionService
	Debt          service.DebtService
	OtherFees     service.OtherFeeService
	Deposit       service.DepositService
	Curriculum    service.CurriculumService
	SemesterPlan  service.SemesterPlanService
	Notifications service.NotificationService
	OneStop       service.OneStopService
	DeviceReports service.DeviceReportService
	Dashboard     service.DashboardService
	Exports       service.ExportService
}

// Portal is everything one signed-in student sees: every page, the dashboard and the toast queue
type Portal struct {
	Student models.Student
	Toasts  *toast.Queue

	Tuition       *TuitionView
	Debt          *DebtView
	OtherFees     *OtherFeeView
	Deposit       *DepositView
	Curriculum    *CurriculumView
	SemesterPlan  *SemesterPlanView
	Notifications *NotificationView
	OneStop       *OneStopView
	DeviceReports *DeviceReportView

	dashboard *resource.Resource[models.Student, response.DashboardResponse]
}

// NewPortal mounts every view for student. semester is the one in progress.
func NewPortal(svc Services, student models.Student, semester string, log *logger.Logger) *Portal {
	q := toast.NewQueue()

	return &Portal{
		Student:       student,
		Toasts:        q,
		Tuition:       NewTuitionView(svc.Tuition, semester, q, log),
		Debt:          NewDebtView(svc.Debt, q, log),
		OtherFees:     NewOtherFeeView(svc.OtherFees, q, log),
		Deposit:       NewDepositView(svc.Deposit, q, log),
		Curriculum:    NewCurriculumView(svc.Curriculum, q, log),
		SemesterPlan:  NewSemesterPlanView(svc.SemesterPlan, semester, q, log),
		Notifications: NewNotificationView(svc.Notifications, q, log),
		OneStop:       NewOneStopView(svc.OneStop, q, log),
		DeviceReports: NewDeviceReportView(svc.DeviceReports, q, log),
		dashboard: resource.New(func(ctx context.Context, s models.Student) (response.DashboardResponse, error) {
			return deref(svc.Dashboard.GetOverview(ctx, s))
		},
			resource.WithName("dashboard"),
			resource.WithErrorMessage(DashboardLoadErrorMessage),
			resource.WithNotifier(q),
			resource.WithLogger(log),
		),
	}
}

// Dashboard loads and returns the home page
func (p *Portal) Dashboard(ctx context.Context) resource.State[response.DashboardResponse] {
	return p.dashboard.Load(ctx, p.Student)
}

// Close unmounts every view and drops pending toasts
func (p *Portal) Close() {
	p.dashboard.Close()
	p.Tuition.Close()
	p.Debt.Close()
	p.OtherFees.Close()
	p.Deposit.Close()
	p.Curriculum.Close()
	p.SemesterPlan.Close()
	p.Notifications.Close()
	p.OneStop.Close()
	p.DeviceReports.Close()
	p.Toasts.Close()
}
