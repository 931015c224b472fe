package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
)

func TestCurriculumOverview(t *testing.T) {
	env := newTestEnv(t)

	overview, err := env.curriculum.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 130, overview.TotalCredits)
	assert.Equal(t, 21, overview.CompletedCredits)
	assert.Equal(t, 9, overview.InProgress)
	assert.Equal(t, 109, overview.RemainingCredits)
	assert.Equal(t, 12, overview.CourseCount)
	assert.InDelta(t, 7.76, overview.GPA, 0.001)
}

func TestCurriculumCourses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fifth, err := env.curriculum.GetCourses(ctx, models.CurriculumFilter{Semester: 5})
	require.NoError(t, err)
	assert.Len(t, fifth, 3)

	electives, err := env.curriculum.GetCourses(ctx, models.CurriculumFilter{CourseType: models.CourseElective})
	require.NoError(t, err)
	assert.Len(t, electives, 2)

	course, err := env.curriculum.GetCourse(ctx, "crs-004")
	require.NoError(t, err)
	assert.Equal(t, []string{"INT1008"}, course.Prerequisites)

	_, err = env.curriculum.GetCourse(ctx, "nope")
	assert.True(t, IsNotFound(err))
}

func TestSemesterPlanAddCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan, err := env.plans.GetPlan(ctx, repository.CurrentSemester)
	require.NoError(t, err)
	assert.Equal(t, 9, plan.TotalCredits)
	assert.Len(t, plan.Courses, 3)

	course, err := env.plans.AddCourse(ctx, repository.CurrentSemester, models.AddPlannedCourseRequest{
		CourseCode: "int3117",
		CourseName: "Kiểm thử và đảm bảo chất lượng phần mềm",
		Credits:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, "INT3117", course.CourseCode)
	assert.Equal(t, models.PlanPlanned, course.Status)

	plan, err = env.plans.GetPlan(ctx, repository.CurrentSemester)
	require.NoError(t, err)
	assert.Equal(t, 12, plan.TotalCredits)
}

func TestSemesterPlanRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.plans.AddCourse(ctx, repository.CurrentSemester, models.AddPlannedCourseRequest{CourseCode: "INT3306", CourseName: "Web", Credits: 3})
	assert.ErrorIs(t, err, ErrDuplicateCourse)

	_, err = env.plans.AddCourse(ctx, repository.CurrentSemester, models.AddPlannedCourseRequest{CourseCode: "INT4050", CourseName: "Khóa luận", Credits: 10})
	require.NoError(t, err)
	_, err = env.plans.AddCourse(ctx, repository.CurrentSemester, models.AddPlannedCourseRequest{CourseCode: "INT4999", CourseName: "Thực tập", Credits: 6})
	assert.ErrorIs(t, err, ErrCreditLimitExceeded)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.plans.AddCourse(ctx, "HK3 2030-2031", models.AddPlannedCourseRequest{CourseCode: "X", CourseName: "Y", Credits: 1})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	_, err = env.plans.GetPlan(ctx, "HK3 2030-2031")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestNotifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	unread, err := env.notifications.GetList(ctx, models.NotificationFilter{ReadState: models.ReadStateUnread})
	require.NoError(t, err)
	assert.Len(t, unread, 3)

	created, err := env.notifications.Create(ctx, models.Notification{Title: "Nhắc nợ", Category: models.NotificationFinance})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityNormal, created.Priority)

	count, err := env.notifications.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	detail, err := env.notifications.GetDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nhắc nợ", detail.Title)

	_, err = env.notifications.Create(ctx, models.Notification{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOneStopSubmitRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.oneStop.SubmitRequest(ctx, models.ServiceRequestInput{ServiceID: "svc-002", Reason: "Nộp hồ sơ du học"})
	require.NoError(t, err)
	assert.Equal(t, 1, req.Copies)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.Equal(t, fixedNow.AddDate(0, 0, 7), req.ExpectedDate)

	pending, err := env.oneStop.GetRequests(ctx, models.ServiceRequestFilter{Status: models.RequestPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, req.ID, pending[0].ID)

	_, err = env.oneStop.SubmitRequest(ctx, models.ServiceRequestInput{ServiceID: "svc-404", Reason: "x"})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	_, err = env.oneStop.SubmitRequest(ctx, models.ServiceRequestInput{ServiceID: "svc-001"})
	assert.ErrorIs(t, err, ErrValidation)

	academic, err := env.oneStop.GetServices(ctx, models.ServiceFilter{Category: models.ServiceAcademic})
	require.NoError(t, err)
	assert.Len(t, academic, 2)
}

func TestDeviceReports(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	report, err := env.reports.CreateReport(ctx, models.DeviceReportInput{
		Building:    " g2 ",
		Room:        "105",
		DeviceType:  models.DeviceLight,
		Description: "Đèn trần nhấp nháy liên tục",
	})
	require.NoError(t, err)
	assert.Equal(t, "G2", report.Building)
	assert.Equal(t, models.ReportPending, report.Status)

	pending, err := env.reports.GetReports(ctx, models.DeviceReportFilter{Status: models.ReportPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = env.reports.CreateReport(ctx, models.DeviceReportInput{Building: "G2", Room: "1", DeviceType: models.DeviceLight, Description: "hỏng"})
	assert.ErrorIs(t, err, ErrValidation)
}
