package converter

import (
	"time"

	dto "lucky_wheel/internal/api/dto/user"
	"lucky_wheel/internal/model"
)

func ToUserForm(req dto.UserRequest) model.UserForm {
	return model.UserForm{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		CodeShop: req.CodeShop,
	}
}

func ToUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		CodeShop:     u.CodeShop,
		SpinsToday:   u.SpinsToday,
		LastSpinDate: timePtr(u.LastSpinDate),
		CreatedAt:    timePtr(u.CreatedAt),
	}
}

func ToUserResponses(users []model.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

func ToCheckResponse(c model.UserCheck) dto.CheckResponse {
	res := dto.CheckResponse{Exists: c.Exists}
	if c.User != nil {
		u := ToUserResponse(*c.User)
		res.User = &u
	}
	return res
}

func ToEntryResponse(e model.Entry) dto.EntryResponse {
	return dto.EntryResponse{
		User:           ToUserResponse(e.User),
		RemainingSpins: e.RemainingSpins,
		Created:        e.Created,
	}
}

func toUserPtr(u *model.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	res := ToUserResponse(*u)
	return &res
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
