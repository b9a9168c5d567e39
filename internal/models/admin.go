package models

import "time"

// Roles de cuenta administrativa.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEditor
}

// Admin es una cuenta del panel de administración. El hash de la
// contraseña nunca se serializa a JSON.
type Admin struct {
	ID           string     `json:"id" bson:"_id"`
	Username     string     `json:"username" bson:"username"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	Role         string     `json:"role" bson:"role"`
	IsActive     bool       `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}

// AdminCreate es el cuerpo de registro de una cuenta.
type AdminCreate struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// Validate comprueba el rol cuando viene informado.
func (in AdminCreate) Validate() error {
	if in.Role != "" && !ValidRole(in.Role) {
		return errInvalidEnum("role", in.Role)
	}
	return nil
}

// AdminLogin es el cuerpo de autenticación.
type AdminLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminToken es la respuesta de login.
type AdminToken struct {
	AccessToken string                 `json:"access_token"`
	TokenType   string                 `json:"token_type"`
	ExpiresIn   int                    `json:"expires_in"`
	UserInfo    map[string]interface{} `json:"user_info"`
}
