package middleware

import (
	"net/http"
	"strings"

	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// tokenFromRequest pulls the access token from the Authorization
// header, falling back to the JWT cookie for browser clients.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie("jwt"); err == nil {
		return cookie
	}
	return ""
}

// JWTAuth validates the access token and stores the caller uuid in the
// context under "user_id".
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "authentication required",
			})
			return
		}

		claims, err := jwt.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "token expired or invalid",
			})
			return
		}

		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "an access token is required",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalAuth stores the caller uuid when a valid token is present but
// lets anonymous requests through. Used on public group reads where
// membership only changes what the response includes.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString != "" {
			if claims, err := jwt.ParseToken(tokenString); err == nil && claims.Subject == "access_token" {
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}
