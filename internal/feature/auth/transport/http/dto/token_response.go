package dto

import "cms_backend/internal/feature/auth/domain/entity"

// UserResp is the public representation of a user. The password hash never
// leaves the server.
type UserResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// NewUserResp converts a user entity to its public representation.
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// TokenResp is returned by register and login.
type TokenResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserResp `json:"user"`
}

// NewTokenResp builds a TokenResp with the fixed "bearer" token type.
func NewTokenResp(token string, u *entity.User) TokenResp {
	return TokenResp{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserResp(u),
	}
}
