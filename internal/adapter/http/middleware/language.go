package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Shrinila/productify-backend/pkg/translator"
)

// LanguageMiddleware stores the caller's language from Accept-Language for
// message localization downstream.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Raw header value, fallback to en; no quality-value parsing.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
