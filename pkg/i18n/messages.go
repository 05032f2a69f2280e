package i18n

var vietnamese = map[string]string{
	// notices
	"Access denied. Insufficient permissions.":                          "Truy cập bị từ chối. Không đủ quyền.",
	"Session expired. Please login again.":                              "Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.",
	"Server error. Please try again later.":                             "Lỗi máy chủ. Vui lòng thử lại sau.",
	"Something went wrong":                                              "Đã xảy ra lỗi",
	"Login successful":                                                  "Đăng nhập thành công",
	"Registration successful":                                           "Đăng ký thành công",
	"You have been logged out":                                          "Bạn đã đăng xuất",
	"Appointment booked. We will contact you to confirm soon.":          "Đặt lịch hẹn thành công. Chúng tôi sẽ liên hệ xác nhận sớm.",
	"Thank you for your donation! We will contact you to confirm soon.": "Cảm ơn bạn đã quyên góp! Chúng tôi sẽ liên hệ xác nhận sớm.",
	"Assistance request submitted successfully!":                        "Gửi yêu cầu hỗ trợ thành công!",
	"Password changed successfully":                                     "Đổi mật khẩu thành công",
	"Profile updated successfully":                                      "Cập nhật hồ sơ thành công",
	"This form is already being submitted":                              "Biểu mẫu đang được gửi",
	"Status updated":                                                    "Đã cập nhật trạng thái",
	"Patient verified":                                                  "Đã xác minh bệnh nhân",

	// navigation
	"Dashboard":     "Bảng điều khiển",
	"Profile":       "Hồ sơ",
	"AI Assistant":  "Trợ lý AI",
	"Appointments":  "Lịch hẹn",
	"Doctors":       "Bác sĩ",
	"Donations":     "Quyên góp",
	"Assistance":    "Hỗ trợ",
	"Patients":      "Bệnh nhân",
	"Users":         "Người dùng",
	"Charity":       "Tổ chức từ thiện",
	"Analytics":     "Thống kê",
	"Notifications": "Thông báo",

	// views
	"Patient Dashboard": "Bảng điều khiển bệnh nhân",
	"Doctor Dashboard":  "Bảng điều khiển bác sĩ",
	"Admin Dashboard":   "Bảng điều khiển quản trị",
	"Charity Dashboard": "Bảng điều khiển tổ chức từ thiện",
	"Page not found":    "Không tìm thấy trang",
	"Your account role is not recognised. Please contact support.": "Vai trò tài khoản không hợp lệ. Vui lòng liên hệ hỗ trợ.",
	"Invalid request": "Yêu cầu không hợp lệ",

	"Home":          "Trang chủ",
	"Login":         "Đăng nhập",
	"Register":      "Đăng ký",
	"Programs":      "Chương trình",
	"Services":      "Dịch vụ",
	"Organizations": "Tổ chức",

	// validation
	"Email is required":                "Vui lòng nhập email",
	"Invalid email address":            "Email không hợp lệ",
	"Password is required":             "Vui lòng nhập mật khẩu",
	"Full name is required":            "Vui lòng nhập họ tên",
	"Phone number is required":         "Vui lòng nhập số điện thoại",
	"Please confirm your password":     "Vui lòng xác nhận mật khẩu",
	"Passwords do not match":           "Mật khẩu xác nhận không khớp",
	"Please select a role":             "Vui lòng chọn vai trò",
	"Must be at least %d characters":   "Phải có ít nhất %d ký tự",
	"Must be a number of at least %d":  "Phải là số không nhỏ hơn %d",
	"Please choose a valid option":     "Vui lòng chọn một giá trị hợp lệ",
	"Please select a doctor":           "Vui lòng chọn bác sĩ",
	"Please select a date":             "Vui lòng chọn ngày",
	"Invalid date":                     "Ngày không hợp lệ",
	"Date cannot be in the past":       "Không thể chọn ngày trong quá khứ",
	"Clinic is closed on Sundays":      "Phòng khám nghỉ Chủ nhật",
	"Please select a time":             "Vui lòng chọn giờ",
	"This time slot is not available":  "Khung giờ này không còn trống",
	"Patient name is required":         "Vui lòng nhập tên bệnh nhân",
	"Patient age is required":          "Vui lòng nhập tuổi",
	"Age must be a whole number":       "Tuổi phải là số nguyên",
	"Please describe your symptoms":    "Vui lòng mô tả triệu chứng",
	"Amount is required":               "Vui lòng nhập số tiền",
	"Donor name is required":           "Vui lòng nhập tên người quyên góp",
	"Please select a payment method":   "Vui lòng chọn phương thức thanh toán",
	"Please select a request type":     "Vui lòng chọn loại hỗ trợ",
	"Title is required":                "Vui lòng nhập tiêu đề",
	"Description is required":          "Vui lòng nhập mô tả",
	"Requested amount is required":     "Vui lòng nhập số tiền cần hỗ trợ",
	"Please select an urgency level":   "Vui lòng chọn mức độ khẩn cấp",
	"Medical condition is required":    "Vui lòng nhập tình trạng bệnh",
	"Current password is required":     "Vui lòng nhập mật khẩu hiện tại",
	"New password is required":         "Vui lòng nhập mật khẩu mới",
	"Message is required":              "Vui lòng nhập tin nhắn",
	"Unsupported file type":            "Định dạng tệp không được hỗ trợ",
	"File is larger than 5 MB":         "Tệp lớn hơn 5 MB",
	"File is already attached":         "Tệp đã được đính kèm",
}
