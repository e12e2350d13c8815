package report

import (
	"context"
	"time"

	"lucky_wheel/internal/lib/sheet"
	"lucky_wheel/internal/model"
)

const (
	timeLayout = "02/01/2006 15:04:05"
	// Защита от бесконечного обхода, если бэкенд врёт о числе страниц
	maxExportPages = 1000
)

var (
	userColumns = []string{
		"ID", "Họ tên", "Email", "Số điện thoại", "Mã cửa hàng",
		"Lượt quay hôm nay", "Quay lần cuối", "Ngày tạo",
	}
	spinColumns = []string{
		"ID", "Người quay", "Email", "Số điện thoại", "Loại", "Địa chỉ",
		"Mã cửa hàng", "Phần thưởng", "Kết quả", "Thời gian",
	}
	employeeColumns = []string{
		"Mã nhân viên", "Họ tên", "Email", "Số điện thoại", "Mã cửa hàng",
		"Địa chỉ", "Số máy đã bán", "Tổng lượt quay", "Lượt quay còn lại", "Ngày tạo",
	}
)

func (s *serv) ExportUsers(ctx context.Context) ([]byte, error) {
	users, err := s.userRepo.Export(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{
			u.ID,
			u.Name,
			u.Email,
			u.Phone,
			orDefault(u.CodeShop, "Không có"),
			u.SpinsToday,
			formatTime(u.LastSpinDate),
			formatTime(u.CreatedAt),
		})
	}

	return sheet.Write("Người dùng", userColumns, rows)
}

// ExportSpins выгружает все страницы истории в пределах фильтра дат
func (s *serv) ExportSpins(ctx context.Context, filter model.SpinFilter) ([]byte, error) {
	filter.Page = 1
	filter.Limit = maxLimit

	var spins []model.Spin
	for filter.Page <= maxExportPages {
		page, err := s.spinRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		spins = append(spins, page.Spins...)

		if len(page.Spins) == 0 || filter.Page >= page.Pagination.TotalPages {
			break
		}
		filter.Page++
	}

	rows := make([][]any, 0, len(spins))
	for _, sp := range spins {
		rows = append(rows, spinRow(sp))
	}

	return sheet.Write("Lịch sử quay", spinColumns, rows)
}

func (s *serv) ExportEmployees(ctx context.Context) ([]byte, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []any{
			e.EmployeeCode,
			e.Name,
			e.Email,
			e.Phone,
			orDefault(e.CodeShop, "Không có"),
			orDefault(e.Address, "Chưa cung cấp"),
			e.MachinesSold,
			e.TotalSpins,
			e.RemainingSpins,
			formatTime(e.CreatedAt),
		})
	}

	return sheet.Write("Nhân viên", employeeColumns, rows)
}

func spinRow(sp model.Spin) []any {
	person := sp.User
	kind := "N/A"
	switch {
	case sp.User != nil:
		kind = "Khách hàng"
	case sp.Employee != nil:
		person = sp.Employee
		kind = "Nhân viên"
	}

	var p model.User
	if person != nil {
		p = *person
	}

	prize := "Không trúng"
	if sp.Prize != nil {
		prize = sp.Prize.Name
	}

	result := "Không trúng"
	if sp.IsWin {
		result = "Trúng thưởng"
	}

	return []any{
		sp.ID,
		orDefault(p.Name, "Không xác định"),
		orDefault(p.Email, "Không xác định"),
		orDefault(p.Phone, "Không xác định"),
		kind,
		orDefault(p.Address, "Chưa cung cấp"),
		orDefault(p.CodeShop, "Không có"),
		prize,
		result,
		formatTime(sp.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
