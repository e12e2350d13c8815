package converter

import (
	dto "lucky_wheel/internal/api/dto/auth"
	"lucky_wheel/internal/model"
)

func ToCredentials(req dto.LoginRequest) model.Credentials {
	return model.Credentials{
		Email:    req.Email,
		Password: req.Password,
	}
}

func ToRegistration(req dto.RegisterRequest) model.Registration {
	return model.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

func ToAdminResponse(admin model.Admin) dto.AdminResponse {
	return dto.AdminResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
	}
}

func ToLoginResponse(data model.AuthData) dto.LoginResponse {
	return dto.LoginResponse{
		AccessToken: data.AccessToken,
		Admin:       ToAdminResponse(data.Admin),
	}
}
