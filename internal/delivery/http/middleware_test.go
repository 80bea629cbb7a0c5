package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{
			name:           "exact match",
			origin:         "https://admin.mrdwine.com",
			allowedOrigins: []string{"https://admin.mrdwine.com"},
			want:           true,
		},
		{
			name:           "wildcard match",
			origin:         "https://admin.mrdwine.com",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			want:           true,
		},
		{
			name:           "multiple allowed origins - matches first",
			origin:         "https://admin.mrdwine.com",
			allowedOrigins: []string{"https://*.mrdwine.com", "http://localhost:3000"},
			want:           true,
		},
		{
			name:           "multiple allowed origins - matches second",
			origin:         "http://localhost:3000",
			allowedOrigins: []string{"https://*.mrdwine.com", "http://localhost:3000"},
			want:           true,
		},
		{
			name:           "no match",
			origin:         "http://evil.com",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			want:           false,
		},
		{
			name:           "empty origin",
			origin:         "",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			want:           false,
		},
		{
			name:           "empty allowed list",
			origin:         "https://admin.mrdwine.com",
			allowedOrigins: []string{},
			want:           false,
		},
		{
			name:           "wildcard does not cross the suffix",
			origin:         "https://admin.mrdwine.com.evil.com",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			want:           false,
		},
		{
			name:           "any localhost port",
			origin:         "http://localhost:5173",
			allowedOrigins: []string{"http://localhost:*"},
			want:           true,
		},
		{
			name:           "partial wildcard match",
			origin:         "https://admin.mrdwine.com",
			allowedOrigins: []string{"https://admin.*"},
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllowedOrigin(tt.origin, tt.allowedOrigins)
			if got != tt.want {
				t.Errorf("isAllowedOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		method         string
		wantStatus     int
		checkHeaders   bool
		wantCORS       bool
	}{
		{
			name:           "allowed origin - GET request",
			origin:         "https://admin.mrdwine.com",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			method:         "GET",
			wantStatus:     http.StatusOK,
			checkHeaders:   true,
			wantCORS:       true,
		},
		{
			name:           "allowed origin - OPTIONS request",
			origin:         "https://admin.mrdwine.com",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			method:         "OPTIONS",
			wantStatus:     http.StatusNoContent,
			checkHeaders:   true,
			wantCORS:       true,
		},
		{
			name:           "disallowed origin",
			origin:         "http://evil.com",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			method:         "GET",
			wantStatus:     http.StatusOK,
			checkHeaders:   true,
			wantCORS:       false,
		},
		{
			name:           "no origin header",
			origin:         "",
			allowedOrigins: []string{"https://*.mrdwine.com"},
			method:         "GET",
			wantStatus:     http.StatusOK,
			checkHeaders:   true,
			wantCORS:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup router
			router := gin.New()
			router.Use(CORSMiddleware(tt.allowedOrigins))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "OK")
			})

			// Create request
			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			// Record response
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Check status
			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			// Check CORS headers
			if tt.checkHeaders {
				corsHeader := w.Header().Get("Access-Control-Allow-Origin")
				if tt.wantCORS {
					if corsHeader != tt.origin {
						t.Errorf("Access-Control-Allow-Origin = %s, want %s", corsHeader, tt.origin)
					}
					if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
						t.Errorf("Access-Control-Allow-Credentials not set to true")
					}
				} else {
					if corsHeader != "" {
						t.Errorf("Access-Control-Allow-Origin should not be set for disallowed origin, got %s", corsHeader)
					}
				}
			}
		})
	}
}

func TestCORSMiddleware_PreflightRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORSMiddleware([]string{"https://*.mrdwine.com"}))
	router.POST("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Create preflight request
	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "https://admin.mrdwine.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Should return 204 No Content
	if w.Code != http.StatusNoContent {
		t.Errorf("Preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}

	// Check CORS headers
	if w.Header().Get("Access-Control-Allow-Origin") != "https://admin.mrdwine.com" {
		t.Errorf("Access-Control-Allow-Origin not set correctly")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Errorf("Access-Control-Allow-Methods not set")
	}
	if w.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Errorf("Access-Control-Allow-Headers not set")
	}
	if w.Header().Get("Access-Control-Max-Age") == "" {
		t.Errorf("Access-Control-Max-Age not set")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(perMinute int) *gin.Engine {
		router := gin.New()
		router.Use(RateLimitMiddleware(perMinute))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})
		return router
	}

	request := func(router *gin.Engine, remoteAddr string) int {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("limits each client separately", func(t *testing.T) {
		router := newRouter(3)

		for i := 0; i < 3; i++ {
			if code := request(router, "10.0.0.1:5000"); code != http.StatusOK {
				t.Fatalf("request %d: Status = %d, want %d", i+1, code, http.StatusOK)
			}
		}
		if code := request(router, "10.0.0.1:5001"); code != http.StatusTooManyRequests {
			t.Errorf("over limit: Status = %d, want %d", code, http.StatusTooManyRequests)
		}
		if code := request(router, "10.0.0.2:5000"); code != http.StatusOK {
			t.Errorf("other client: Status = %d, want %d", code, http.StatusOK)
		}
	})

	t.Run("zero disables limiting", func(t *testing.T) {
		router := newRouter(0)

		for i := 0; i < 50; i++ {
			if code := request(router, "10.0.0.1:5000"); code != http.StatusOK {
				t.Fatalf("request %d: Status = %d, want %d", i+1, code, http.StatusOK)
			}
		}
	})
}

func TestUploadLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(UploadLimitMiddleware(16))
	router.POST("/test", func(c *gin.Context) {
		buf := make([]byte, 64)
		n, _ := c.Request.Body.Read(buf)
		c.String(http.StatusOK, "%d", n)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "within limit", body: "Title\nOpus One", wantStatus: http.StatusOK},
		{name: "over limit", body: strings.Repeat("x", 17), wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/test", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
