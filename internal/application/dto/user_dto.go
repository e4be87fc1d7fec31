package dto

// RegisterRequest kullanıcı kayıt isteği.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest giriş isteği.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse kullanıcı yanıtı (şifre alanı asla dönülmez).
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	LastLogin string `json:"last_login,omitempty"`
}

// LoginResponse giriş yanıtı.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RatesResponse TCMB günlük satış kurları (yalnızca öneri amaçlı; kayda
// yazılan kur donuktur).
type RatesResponse struct {
	USD  string `json:"usd"`
	EUR  string `json:"eur"`
	Date string `json:"date"`
}
