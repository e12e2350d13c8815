package converter

import (
	dto "lucky_wheel/internal/api/dto/employee"
	"lucky_wheel/internal/model"
)

func ToEmployee(id string, req dto.EmployeeRequest) model.Employee {
	return model.Employee{
		ID:           id,
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CodeShop:     req.CodeShop,
		Address:      req.Address,
		MachinesSold: req.MachinesSold,
		TotalSpins:   req.TotalSpins,
	}
}

func ToEmployeeResponse(e model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		CodeShop:       e.CodeShop,
		Address:        e.Address,
		MachinesSold:   e.MachinesSold,
		RemainingSpins: e.RemainingSpins,
		TotalSpins:     e.TotalSpins,
		CreatedAt:      timePtr(e.CreatedAt),
	}
}

func ToEmployeeResponses(employees []model.Employee) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}

func ToImportResponse(r model.ImportResult) dto.ImportResponse {
	return dto.ImportResponse{
		Total:   r.Total,
		Created: r.Created,
		Updated: r.Updated,
		Failed:  r.Failed,
	}
}
