package employee

import (
	"log/slog"

	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
)

// Колонки файла импорта сотрудников
var columns = []string{
	"employeeCode",
	"name",
	"email",
	"phone",
	"codeShop",
	"address",
	"machinesSold",
	"totalSpins",
}

type serv struct {
	repo repository.EmployeeRepository
	log  *slog.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository, log *slog.Logger) service.EmployeeService {
	return &serv{
		repo: repo,
		log:  log,
	}
}
