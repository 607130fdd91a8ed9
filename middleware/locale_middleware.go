package middleware

import (
	"net/http"
	"strings"

	"main/utils"
)

// LocaleMiddleware кладет язык запроса в контекст (из заголовка Accept-Language)
func LocaleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := "en"
		if header := r.Header.Get("Accept-Language"); header != "" {
			// Берем первый тег без параметров качества: "ru-RU,ru;q=0.9" -> "ru-RU"
			lang = strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
			if i := strings.IndexByte(lang, ';'); i >= 0 {
				lang = lang[:i]
			}
		}

		ctx := utils.WithLanguage(r.Context(), lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
