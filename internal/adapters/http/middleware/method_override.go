package middleware

import (
	"errors"
	"mime"
	"net/http"
	"strings"
)

// MethodOverrideField is the form field browsers use to tunnel PUT and DELETE.
const MethodOverrideField = "_method"

// multipartMemory matches gin's default in-memory limit for multipart forms.
const multipartMemory = 32 << 20

// MethodOverride wraps next so that a POST form carrying _method=PUT,
// PATCH or DELETE is routed as that verb. It must wrap the gin engine
// rather than run as gin middleware, since gin matches the route before
// middleware runs. maxBytes bounds the form body it parses; a larger
// body is answered with 413.
func MethodOverride(next http.Handler, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			mediaType := formType(r)
			if mediaType != "" {
				if maxBytes > 0 {
					r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
				}

				if err := parseForm(r, mediaType); err != nil {
					var tooLarge *http.MaxBytesError
					if errors.As(err, &tooLarge) {
						http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
						return
					}
				}

				switch method := strings.ToUpper(r.PostForm.Get(MethodOverrideField)); method {
				case http.MethodPut, http.MethodPatch, http.MethodDelete:
					r.Method = method
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}

func parseForm(r *http.Request, mediaType string) error {
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(multipartMemory)
	}

	return r.ParseForm()
}

// formType returns the request's form media type, or "" when the body is not a form.
func formType(r *http.Request) string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return mediaType
	}

	return ""
}
