package viewstate

import (
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// NewServices builds every domain service over store. Calls go through t; baseURL prefixes download links.
func NewServices(store *repository.Store, t *transport.Transport, clock service.Clock, baseURL string, log *logger.Logger) Services {
	exports := service.NewExportService(store.Exports, clock, log)

	svc := Services{
		Tuition:       service.NewTuitionService(store.Tuition, store.Payments, exports, t, clock, baseURL, log),
		Debt:          service.NewDebtService(store.Debts, store.Payments, t, clock, log),
		OtherFees:     service.NewOtherFeeService(store.OtherFees, store.Payments, t, clock, log),
		Deposit:       service.NewDepositService(store.Deposits, t, clock, log),
		Curriculum:    service.NewCurriculumService(store.Curriculum, t, log),
		SemesterPlan:  service.NewSemesterPlanService(store.SemesterPlans, t, clock, log),
		Notifications: service.NewNotificationService(store.Notifications, t, clock, log),
		OneStop:       service.NewOneStopService(store.OneStop, t, clock, log),
		DeviceReports: service.NewDeviceReportService(store.DeviceReports, t, clock, log),
		Exports:       exports,
	}
	svc.Dashboard = service.NewDashboardService(svc.Tuition, svc.Debt, svc.OtherFees, svc.Deposit, svc.Notifications, repository.CurrentSemester, log)
	return svc
}
