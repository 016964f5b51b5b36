package client

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/devconnect/cli/pkg/config"
	"github.com/devconnect/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
)

var httpClient *resty.Client

// Init initializes the HTTP client
func Init() {
	httpClient = newClient()
}

func newClient() *resty.Client {
	c := resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", "DevConnect-CLI/0.1.0")

	// The session credential is a cookie set by the server on login.
	// Every request carries it implicitly through the jar.
	jar, err := cookiejar.New(nil)
	if err == nil {
		c.SetCookieJar(jar)
	}

	// Add request/response logging
	c.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	c.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})

	return c
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetSessionCookie stores a session cookie in the client's jar
func SetSessionCookie(cookie *http.Cookie) {
	c := GetClient()

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		logger.Error("Invalid base URL for session cookie", "error", err)
		return
	}

	if jar := c.GetClient().Jar; jar != nil {
		jar.SetCookies(u, []*http.Cookie{cookie})
	}
}

// SessionCookie returns the current session cookie, if any
func SessionCookie(name string) *http.Cookie {
	c := GetClient()

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil
	}

	jar := c.GetClient().Jar
	if jar == nil {
		return nil
	}

	for _, ck := range jar.Cookies(u) {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// Reset rebuilds the client with a fresh cookie jar, dropping the session
func Reset() {
	httpClient = newClient()
}
