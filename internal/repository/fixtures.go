package repository

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"student-portal-svc/internal/models"
)

// CurrentSemester is the semester the portal treats as in progress
const CurrentSemester = "HK1 2024-2025"

// DefaultPassword is the password of every mock account
const DefaultPassword = "123456"

func day(now time.Time, offset int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, offset)
}

func grade(g float64) *float64 {
	return &g
}

// DefaultDebts returns the mock debt set: one unpaid, one paid, one partially paid and overdue
func DefaultDebts(now time.Time) []models.DebtItem {
	return []models.DebtItem{
		{
			ID:          "debt-001",
			DebtCode:    "HP2023-2024-2",
			Description: "Học phí học kỳ 2 năm học 2023-2024",
			DebtType:    models.DebtTypeTuition,
			Semester:    "HK2 2023-2024",
			Amount:      12500000,
			Paid:        0,
			DueDate:     day(now, 10),
			Status:      models.StatusUnpaid,
		},
		{
			ID:          "debt-002",
			DebtCode:    "BHYT2023",
			Description: "Bảo hiểm y tế sinh viên năm 2023",
			DebtType:    models.DebtTypeInsurance,
			Semester:    "HK1 2023-2024",
			Amount:      680400,
			Paid:        680400,
			DueDate:     day(now, -120),
			Status:      models.StatusPaid,
		},
		{
			ID:          "debt-003",
			DebtCode:    "HP2023-2024-1",
			Description: "Học phí học kỳ 1 năm học 2023-2024",
			DebtType:    models.DebtTypeTuition,
			Semester:    "HK1 2023-2024",
			Amount:      11000000,
			Paid:        6000000,
			DueDate:     day(now, -30),
			Status:      models.StatusOverdue,
		},
	}
}

// DefaultTuitionItems returns tuition for the current and the previous semester
func DefaultTuitionItems(now time.Time) []models.TuitionItem {
	return []models.TuitionItem{
		{ID: "tui-001", Semester: CurrentSemester, CourseCode: "INT3306", CourseName: "Phát triển ứng dụng Web", Credits: 3, Amount: 1650000, Paid: 1650000, DueDate: day(now, 20), Status: models.StatusPaid},
		{ID: "tui-002", Semester: CurrentSemester, CourseCode: "INT3110", CourseName: "Phân tích và thiết kế hướng đối tượng", Credits: 3, Amount: 1650000, Paid: 0, DueDate: day(now, 20), Status: models.StatusUnpaid},
		{ID: "tui-003", Semester: CurrentSemester, CourseCode: "INT3401", CourseName: "Trí tuệ nhân tạo", Credits: 3, Amount: 1650000, Paid: 0, DueDate: day(now, 20), Status: models.StatusUnpaid},
		{ID: "tui-004", Semester: CurrentSemester, CourseCode: "PES1020", CourseName: "Giáo dục thể chất", Credits: 2, Amount: 1100000, Paid: 0, DueDate: day(now, 45), Status: models.StatusUpcoming},
		{ID: "tui-005", Semester: "HK2 2023-2024", CourseCode: "INT2208", CourseName: "Công nghệ phần mềm", Credits: 3, Amount: 1650000, Paid: 1650000, DueDate: day(now, -150), Status: models.StatusPaid},
		{ID: "tui-006", Semester: "HK2 2023-2024", CourseCode: "INT2211", CourseName: "Cơ sở dữ liệu", Credits: 4, Amount: 2200000, Paid: 2200000, DueDate: day(now, -150), Status: models.StatusPaid},
	}
}

// DefaultOtherFees returns non-tuition fees
func DefaultOtherFees(now time.Time) []models.OtherFeeItem {
	return []models.OtherFeeItem{
		{ID: "fee-001", Name: "Bảo hiểm y tế sinh viên năm 2024", Category: models.FeeCategoryInsurance, Amount: 680400, Paid: 0, DueDate: day(now, 15), Status: models.StatusUnpaid},
		{ID: "fee-002", Name: "Phí ký túc xá học kỳ 1", Category: models.FeeCategoryDormitory, Amount: 1500000, Paid: 1500000, DueDate: day(now, -40), Status: models.StatusPaid},
		{ID: "fee-003", Name: "Phí gửi xe máy học kỳ 1", Category: models.FeeCategoryParking, Amount: 300000, Paid: 0, DueDate: day(now, 35), Status: models.StatusUpcoming},
		{ID: "fee-004", Name: "Lệ phí thi lại môn Cơ sở dữ liệu", Category: models.FeeCategoryExam, Amount: 200000, Paid: 0, DueDate: day(now, -3), Status: models.StatusOverdue},
	}
}

// DefaultDepositTransactions returns account movements over the last two months
func DefaultDepositTransactions(now time.Time) []models.DepositTransaction {
	return []models.DepositTransaction{
		{ID: "dep-001", Type: models.DepositTypeDeposit, Amount: 2000000, Method: models.MethodBankTransfer, Description: "Nạp tiền vào tài khoản", Status: models.TransactionCompleted, CreatedAt: day(now, -60)},
		{ID: "dep-002", Type: models.DepositTypePayment, Amount: 1500000, Method: "account", Description: "Thanh toán phí ký túc xá học kỳ 1", Status: models.TransactionCompleted, CreatedAt: day(now, -45)},
		{ID: "dep-003", Type: models.DepositTypeDeposit, Amount: 1000000, Method: models.MethodEWallet, Description: "Nạp tiền qua ví điện tử", Status: models.TransactionCompleted, CreatedAt: day(now, -20)},
		{ID: "dep-004", Type: models.DepositTypePayment, Amount: 300000, Method: "account", Description: "Thanh toán phí gửi xe", Status: models.TransactionCompleted, CreatedAt: day(now, -5)},
		{ID: "dep-005", Type: models.DepositTypeRefund, Amount: 50000, Method: "account", Description: "Hoàn tiền lệ phí thi", Status: models.TransactionCompleted, CreatedAt: day(now, -2)},
	}
}

// DefaultProgram returns the student's training program
func DefaultProgram() Program {
	return Program{Name: "Cử nhân Công nghệ thông tin", TotalCredits: 130}
}

// DefaultCourses returns the curriculum courses
func DefaultCourses() []models.Course {
	return []models.Course{
		{ID: "crs-001", Code: "INT1008", Name: "Nhập môn lập trình", Credits: 3, Semester: 1, CourseType: models.CourseRequired, Prerequisites: []string{}, Description: "Các khái niệm cơ bản về lập trình và thuật toán", Status: models.CourseCompleted, Grade: grade(8.5)},
		{ID: "crs-002", Code: "MAT1093", Name: "Đại số", Credits: 4, Semester: 1, CourseType: models.CourseGeneral, Prerequisites: []string{}, Description: "Ma trận, định thức, không gian vector", Status: models.CourseCompleted, Grade: grade(7.0)},
		{ID: "crs-003", Code: "PHI1006", Name: "Triết học Mác - Lênin", Credits: 3, Semester: 1, CourseType: models.CourseGeneral, Prerequisites: []string{}, Description: "Thế giới quan và phương pháp luận", Status: models.CourseCompleted, Grade: grade(7.8)},
		{ID: "crs-004", Code: "INT2210", Name: "Cấu trúc dữ liệu và giải thuật", Credits: 4, Semester: 2, CourseType: models.CourseRequired, Prerequisites: []string{"INT1008"}, Description: "Danh sách, cây, đồ thị và các giải thuật cơ bản", Status: models.CourseCompleted, Grade: grade(9.0)},
		{ID: "crs-005", Code: "INT2211", Name: "Cơ sở dữ liệu", Credits: 4, Semester: 3, CourseType: models.CourseRequired, Prerequisites: []string{"INT2210"}, Description: "Mô hình quan hệ, SQL và chuẩn hóa", Status: models.CourseCompleted, Grade: grade(6.5)},
		{ID: "crs-006", Code: "INT2208", Name: "Công nghệ phần mềm", Credits: 3, Semester: 4, CourseType: models.CourseRequired, Prerequisites: []string{"INT2210"}, Description: "Quy trình phát triển phần mềm", Status: models.CourseCompleted, Grade: grade(8.0)},
		{ID: "crs-007", Code: "INT3306", Name: "Phát triển ứng dụng Web", Credits: 3, Semester: 5, CourseType: models.CourseRequired, Prerequisites: []string{"INT2211"}, Description: "Xây dựng ứng dụng web phía máy chủ và máy khách", Status: models.CourseInProgress},
		{ID: "crs-008", Code: "INT3110", Name: "Phân tích và thiết kế hướng đối tượng", Credits: 3, Semester: 5, CourseType: models.CourseRequired, Prerequisites: []string{"INT2208"}, Description: "UML và các mẫu thiết kế", Status: models.CourseInProgress},
		{ID: "crs-009", Code: "INT3401", Name: "Trí tuệ nhân tạo", Credits: 3, Semester: 5, CourseType: models.CourseElective, Prerequisites: []string{"INT2210"}, Description: "Tìm kiếm, biểu diễn tri thức và học máy cơ bản", Status: models.CourseInProgress},
		{ID: "crs-010", Code: "INT3117", Name: "Kiểm thử và đảm bảo chất lượng phần mềm", Credits: 3, Semester: 6, CourseType: models.CourseRequired, Prerequisites: []string{"INT2208"}, Description: "Kỹ thuật kiểm thử hộp đen và hộp trắng", Status: models.CourseNotStarted},
		{ID: "crs-011", Code: "INT3209", Name: "Khai phá dữ liệu", Credits: 3, Semester: 6, CourseType: models.CourseElective, Prerequisites: []string{"INT2211"}, Description: "Phân lớp, phân cụm và luật kết hợp", Status: models.CourseNotStarted},
		{ID: "crs-012", Code: "INT4050", Name: "Khóa luận tốt nghiệp", Credits: 10, Semester: 8, CourseType: models.CourseRequired, Prerequisites: []string{"INT3306", "INT3110"}, Description: "Đề tài nghiên cứu hoặc phát triển sản phẩm", Status: models.CourseNotStarted},
	}
}

// DefaultSemesters returns the semesters a plan can be built for
func DefaultSemesters(now time.Time) []models.SemesterInfo {
	return []models.SemesterInfo{
		{Code: CurrentSemester, Name: "Học kỳ 1 năm học 2024-2025", MaxCredits: 24, MinCredits: 14, StartDate: day(now, -30), EndDate: day(now, 90)},
		{Code: "HK2 2024-2025", Name: "Học kỳ 2 năm học 2024-2025", MaxCredits: 24, MinCredits: 14, StartDate: day(now, 120), EndDate: day(now, 240)},
	}
}

// DefaultPlannedCourses returns the courses already placed in the current semester
func DefaultPlannedCourses(now time.Time) []models.PlannedCourse {
	return []models.PlannedCourse{
		{ID: "plan-001", Semester: CurrentSemester, CourseCode: "INT3306", CourseName: "Phát triển ứng dụng Web", Credits: 3, Schedule: "Thứ 2, tiết 1-3, phòng 301-G2", Instructor: "TS. Trần Minh Đức", Status: models.PlanRegistered, AddedAt: day(now, -35)},
		{ID: "plan-002", Semester: CurrentSemester, CourseCode: "INT3110", CourseName: "Phân tích và thiết kế hướng đối tượng", Credits: 3, Schedule: "Thứ 4, tiết 4-6, phòng 208-E3", Instructor: "PGS.TS. Lê Thị Hoa", Status: models.PlanRegistered, AddedAt: day(now, -35)},
		{ID: "plan-003", Semester: CurrentSemester, CourseCode: "INT3401", CourseName: "Trí tuệ nhân tạo", Credits: 3, Schedule: "Thứ 6, tiết 7-9, phòng 102-G2", Instructor: "TS. Phạm Quang Huy", Status: models.PlanRegistered, AddedAt: day(now, -34)},
	}
}

// DefaultNotifications returns the inbox
func DefaultNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{ID: "noti-001", Title: "Thông báo đóng học phí học kỳ 1 năm học 2024-2025", Content: "Sinh viên hoàn thành học phí trước hạn để không bị hủy kết quả đăng ký học phần.", Category: models.NotificationFinance, Priority: models.PriorityHigh, Sender: "Phòng Kế hoạch - Tài chính", Read: false, CreatedAt: day(now, -3)},
		{ID: "noti-002", Title: "Lịch thi giữa kỳ học kỳ 1", Content: "Lịch thi giữa kỳ đã được cập nhật trên cổng thông tin.", Category: models.NotificationAcademic, Priority: models.PriorityNormal, Sender: "Phòng Đào tạo", Read: false, CreatedAt: day(now, -5)},
		{ID: "noti-003", Title: "Hội thảo định hướng nghề nghiệp CNTT", Content: "Mời sinh viên tham dự hội thảo tại hội trường lớn.", Category: models.NotificationEvent, Priority: models.PriorityLow, Sender: "Đoàn Thanh niên", Read: true, CreatedAt: day(now, -9)},
		{ID: "noti-004", Title: "Bảo trì hệ thống cổng thông tin", Content: "Hệ thống tạm ngừng hoạt động từ 22h đến 24h thứ Bảy.", Category: models.NotificationSystem, Priority: models.PriorityNormal, Sender: "Trung tâm Công nghệ thông tin", Read: true, CreatedAt: day(now, -12)},
		{ID: "noti-005", Title: "Kết quả xét học bổng học kỳ 2", Content: "Danh sách sinh viên nhận học bổng đã được công bố.", Category: models.NotificationAcademic, Priority: models.PriorityHigh, Sender: "Phòng Công tác sinh viên", Read: false, CreatedAt: day(now, -1)},
	}
}

// DefaultServices returns the one-stop catalog
func DefaultServices() []models.Service {
	return []models.Service{
		{ID: "svc-001", Code: "GXN-SV", Name: "Giấy xác nhận sinh viên", Category: models.ServiceCertificate, Description: "Xác nhận đang là sinh viên của trường", ProcessingDays: 3, Fee: 0, RequiredDocuments: []string{"Thẻ sinh viên"}},
		{ID: "svc-002", Code: "BD-TA", Name: "Bảng điểm tiếng Anh", Category: models.ServiceAcademic, Description: "Bảng điểm toàn khóa bằng tiếng Anh", ProcessingDays: 7, Fee: 50000, RequiredDocuments: []string{"Thẻ sinh viên", "Biên lai nộp lệ phí"}},
		{ID: "svc-003", Code: "GXN-VV", Name: "Giấy xác nhận vay vốn", Category: models.ServiceFinance, Description: "Xác nhận để vay vốn ngân hàng chính sách xã hội", ProcessingDays: 5, Fee: 0, RequiredDocuments: []string{"Thẻ sinh viên", "Mẫu xác nhận của ngân hàng"}},
		{ID: "svc-004", Code: "CAP-THE", Name: "Cấp lại thẻ sinh viên", Category: models.ServiceOther, Description: "Cấp lại thẻ sinh viên bị mất hoặc hỏng", ProcessingDays: 10, Fee: 30000, RequiredDocuments: []string{"Đơn đề nghị", "Ảnh 3x4"}},
		{ID: "svc-005", Code: "HOAN-THI", Name: "Đơn xin hoãn thi", Category: models.ServiceAcademic, Description: "Hoãn thi kết thúc học phần vì lý do chính đáng", ProcessingDays: 2, Fee: 0, RequiredDocuments: []string{"Đơn xin hoãn thi", "Minh chứng"}},
	}
}

// DefaultServiceRequests returns requests already submitted
func DefaultServiceRequests(now time.Time) []models.ServiceRequest {
	return []models.ServiceRequest{
		{ID: "req-001", ServiceID: "svc-001", ServiceName: "Giấy xác nhận sinh viên", Copies: 2, Reason: "Bổ sung hồ sơ xin việc làm thêm", Status: models.RequestCompleted, CreatedAt: day(now, -14), ExpectedDate: day(now, -11)},
	}
}

// DefaultDeviceReports returns fault reports already filed
func DefaultDeviceReports(now time.Time) []models.DeviceReport {
	return []models.DeviceReport{
		{ID: "rep-001", Building: "G2", Room: "301", DeviceType: models.DeviceProjector, Description: "Máy chiếu không nhận tín hiệu HDMI", Status: models.ReportResolved, ReportedAt: day(now, -8)},
		{ID: "rep-002", Building: "E3", Room: "208", DeviceType: models.DeviceAirConditioner, Description: "Điều hòa chảy nước xuống bàn giáo viên", Status: models.ReportProcessing, ReportedAt: day(now, -2)},
	}
}

// DefaultStudents returns the mock accounts, all using DefaultPassword
func DefaultStudents() ([]models.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return []models.Student{
		{StudentID: "SV2021001", FullName: "Nguyễn Văn An", Email: "an.nv@student.edu.vn", ClassName: "K66-CNTT1", Major: "Công nghệ thông tin", Faculty: "Khoa Công nghệ thông tin", CohortYear: 2021, PasswordHash: hash},
		{StudentID: "SV2021002", FullName: "Trần Thị Bình", Email: "binh.tt@student.edu.vn", ClassName: "K66-CNTT2", Major: "Công nghệ thông tin", Faculty: "Khoa Công nghệ thông tin", CohortYear: 2021, PasswordHash: hash},
	}, nil
}
