package middleware

import (
	"creatingtasks/pkg/translator"

	"github.com/gin-gonic/gin"
)

const languageContextKey = "lang"

// LanguageMiddleware negotiates the response language from Accept-Language
// and echoes the choice in Content-Language.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := translator.MatchLanguage(c.GetHeader("Accept-Language"))
		c.Set(languageContextKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang := c.GetString(languageContextKey); lang != "" {
		return lang
	}
	return translator.LanguageEn
}
