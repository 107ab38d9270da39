package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims represents the JWT payload for access tokens issued by the
// surrounding platform. The optimizer only validates tokens; it never
// issues them.
type JWTClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}
