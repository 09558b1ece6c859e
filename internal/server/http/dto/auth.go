package dto

// AuthRequest describes username/password payload.
type AuthRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=30"`
	Password string `json:"password" binding:"required,min=5"`
}

// TokenResponse carries an issued auth token.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginResponse is returned after a successful login and its check-in.
type LoginResponse struct {
	Token   string          `json:"token"`
	CheckIn CheckInResponse `json:"checkIn"`
}

// CheckInResponse summarizes the day rollover applied at login.
type CheckInResponse struct {
	DaysDiff     int             `json:"daysDiff"`
	CoinsGranted int64           `json:"coinsGranted"`
	Achievements []GrantResponse `json:"achievements"`
}

// GrantResponse is an achievement unlocked by the request.
type GrantResponse struct {
	Kind  string `json:"kind"`
	Coins int64  `json:"coins"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
