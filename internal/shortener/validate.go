package shortener

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrURLRequired = errors.New("url is required")
	ErrInvalidURL  = errors.New("invalid url format")
)

// ValidateURL accepts only absolute URLs with both a scheme and a host.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrURLRequired
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}

	if u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// BaseURL returns the prefix short codes are appended to. A configured public
// domain is served over https; otherwise the service's local address is used.
func BaseURL(publicDomain string, port int) string {
	if publicDomain != "" {
		return "https://" + publicDomain
	}

	return "http://localhost:" + strconv.Itoa(port)
}

// Link joins a base URL and a code into the public short URL.
func Link(baseURL string, code Code) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + string(code)
}
