package converter

import (
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
)

const DateLayout = "2006-01-02"

// UserToResponse converts a User entity to UserResponse DTO. The password hash is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Roles:     []string(user.Roles),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Active:    user.IsActive(),
		Gender:    user.Gender,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if response.Roles == nil {
		response.Roles = []string{}
	}

	if user.DateOfBirth != nil {
		dob := user.DateOfBirth.Format(DateLayout)
		response.DateOfBirth = &dob
	}

	return response
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
