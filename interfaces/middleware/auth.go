package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"trending-ingest/domain/dto"
	"trending-ingest/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const ContextSubject = "subject"

// Auth accepts requests carrying "Authorization: Bearer <token>" signed
// with secretKey using HS256 and carrying exp. The token subject is stored
// under ContextSubject.
func Auth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}

		if secretKey == "" {
			logger.GetLogger().Error("Trigger secret key not configured; rejecting request")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		authorization := ctx.Request.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(authorization, "Bearer ")
		if !ok || raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, token, err := getClaim(raw, secretKey)
		if err != nil || token == nil || !token.Valid {
			res.ResponseMessage = reason(err)
			logger.GetLogger().WithField("error", err).Warn("Trigger token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		if claims.ExpiresAt == 0 {
			res.ResponseMessage = "Token has no expiry"
			logger.GetLogger().WithField("subject", claims.Subject).Warn("Trigger token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set(ContextSubject, claims.Subject)
		ctx.Next()
	}
}

func reason(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			// Token is either expired or not active yet
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token: %v", err)
	}
	return "Unauthorized"
}

func getClaim(raw string, secretKey string) (jwt.StandardClaims, *jwt.Token, error) {
	var claims jwt.StandardClaims
	token, err := jwt.ParseWithClaims(
		raw,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		},
	)
	return claims, token, err
}
