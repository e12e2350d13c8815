package report

import (
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
)

type serv struct {
	spinRepo     repository.SpinRepository
	userRepo     repository.UserRepository
	prizeRepo    repository.PrizeRepository
	employeeRepo repository.EmployeeRepository
}

func NewReportService(
	spinRepo repository.SpinRepository,
	userRepo repository.UserRepository,
	prizeRepo repository.PrizeRepository,
	employeeRepo repository.EmployeeRepository,
) service.ReportService {
	return &serv{
		spinRepo:     spinRepo,
		userRepo:     userRepo,
		prizeRepo:    prizeRepo,
		employeeRepo: employeeRepo,
	}
}
