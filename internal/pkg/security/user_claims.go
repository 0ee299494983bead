package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// DirectusIssuer Directus 签发 access token 时的默认 iss
const DirectusIssuer = "directus"

// DirectusClaims Directus access token 中的身份信息
type DirectusClaims struct {
	UserID      string `json:"id"`
	Role        string `json:"role"`
	AppAccess   bool   `json:"app_access"`
	AdminAccess bool   `json:"admin_access"`
	jwt.RegisteredClaims
}
