package dto

import (
	"farhatna/infras/jwt"
	"farhatna/internal/domains/user/model"
	userDto "farhatna/internal/domains/user/model/dto"
	gModel "farhatna/shared/model"
	"farhatna/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=CUSTOMER ADMIN"`
}

// ToModel builds a user with the password already hashed. Registrations
// without an explicit role become customers.
func (r *RegisterRequest) ToModel(hashedPassword string) model.User {
	role := model.Role(r.Role)
	if !role.Valid() {
		role = model.RoleCustomer
	}

	id := uuid.NewString()

	return model.User{
		ID:       id,
		Email:    r.Email,
		Name:     r.Name,
		Password: hashedPassword,
		Role:     role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	User         userDto.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	TokenType    string               `json:"token_type"`
	ExpiresIn    int64                `json:"expires_in"`
}

func (r *AuthResponse) FromModel(user model.User, pair *jwt.TokenPair) {
	r.User.FromModel(user)
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}
