package dto

// LoginRequest credencial del único administrador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión de administrador.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
