package dto

// RegisterRequest represents the data needed to register a student account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"amina@example.org"`
	Password  string `json:"password" binding:"required,min=8" example:"Secret123!"`
	FirstName string `json:"firstName" binding:"required" example:"Amina"`
	LastName  string `json:"lastName" binding:"required" example:"Diallo"`
	Phone     string `json:"phone" example:"+221770000000"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"amina@example.org"`
	Password string `json:"password" binding:"required" example:"Secret123!"`
}

// RefreshTokenRequest represents a refresh token exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// AuthResponse bundles the authenticated user with its token pair
type AuthResponse struct {
	UserID    int64         `json:"userId"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	RoleType  string        `json:"roleType" example:"STUDENT"`
	Tokens    TokenResponse `json:"tokens"`
}
