package api

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type JwtResponse struct {
	Token string `json:"token"`
}
