package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ferdiebergado/gastos/internal/pkg/message"
	"github.com/ferdiebergado/gastos/internal/pkg/web"
)

// CheckContentType rejects bodied requests that are not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodDelete {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		if !strings.HasPrefix(contentType, web.MimeJSON) {
			web.Fail(w, http.StatusNotAcceptable, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
