package handler

import (
	"time"

	"github.com/chris7683/fit-and-fix/internal/domain"
)

// UserDTO is the JSON projection of a user. The password hash is never part
// of it.
type UserDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	ProfileImageURL string `json:"profile_image_url"`
	CreatedAt       string `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		PhoneNumber:     u.PhoneNumber,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}
