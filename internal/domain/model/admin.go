package model

type Role string

const (
	RoleAdmin Role = "ADMIN"
)

// AdminToken は POST /auth/login のレスポンス。
type AdminToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
