package middleware

import (
	"crypto/subtle"
	"strings"

	"talkify_backend/internal/config"
	"talkify_backend/internal/util"
	"talkify_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT parse failed", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// Authorizer admin isteğindeki kimlik bilgisini değerlendiren politika.
// Varsayılan politika paylaşılan anahtarı sabit zamanlı karşılaştırır;
// farklı bir backend (ör. veritabanı rolleri) aynı imzayla takılabilir.
type Authorizer func(credential string) bool

func SharedKeyAuthorizer(secretKey string) Authorizer {
	return func(credential string) bool {
		if secretKey == "" || credential == "" {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(credential), []byte(secretKey)) == 1
	}
}

// AdminMiddleware X-Admin-Key başlığını verilen politikayla doğrular
func AdminMiddleware(authorize Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c.GetHeader("X-Admin-Key")) {
			logger.Log.Warn("Admin authorization rejected",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.FullPath()),
			)
			util.Forbidden(c, "Bu işlem için admin yetkisi gerekli.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireJSON gövdeli isteklerde content type kontrolü
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "POST" || c.Request.Method == "PUT" || c.Request.Method == "PATCH" {
			contentType := c.ContentType()
			if contentType != "application/json" && !strings.HasPrefix(contentType, "multipart/form-data") {
				util.UnsupportedMedia(c)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
