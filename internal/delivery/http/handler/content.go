package handler

// Public information pages are static; the backend has no endpoints for them.

type publicProgram struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type publicService struct {
	Title string `json:"title"`
}

type publicOrganization struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
}

var programs = []publicProgram{
	{Title: "Mổ tim cho trẻ em nghèo", Category: "surgery"},
	{Title: "Chăm sóc người cao tuổi", Category: "elderly"},
	{Title: "Khám sức khỏe cộng đồng", Category: "community"},
	{Title: "Hỗ trợ dinh dưỡng trẻ em", Category: "nutrition"},
	{Title: "Khám mắt & Tặng kính", Category: "eye_care"},
	{Title: "Chăm sóc sức khỏe sinh sản", Category: "maternal"},
}

var services = []publicService{
	{Title: "Khám bệnh miễn phí"},
	{Title: "Cấp cứu 24/7"},
	{Title: "Chăm sóc sản nhi"},
	{Title: "Điều trị mãn tính"},
	{Title: "Xét nghiệm & Chẩn đoán"},
	{Title: "Cấp phát thuốc"},
}

var organizations = []publicOrganization{
	{Name: "Hội Chữ Thập Đỏ Việt Nam", Focus: "humanitarian"},
	{Name: "Quỹ Tấm Lòng Việt", Focus: "community"},
	{Name: "Hội Bảo Trợ Bệnh Nhân Nghèo", Focus: "patients"},
	{Name: "Quỹ Bảo Trợ Trẻ Em Việt Nam", Focus: "children"},
	{Name: "Hội Bác Sĩ Tình Nguyện", Focus: "volunteers"},
	{Name: "Quỹ Vì Người Nghèo", Focus: "poverty"},
	{Name: "Hội Chăm Sóc Người Cao Tuổi", Focus: "elderly"},
	{Name: "Tổ Chức Operation Smile Việt Nam", Focus: "surgery"},
	{Name: "Hội Phòng Chống Ung Thư", Focus: "oncology"},
}
