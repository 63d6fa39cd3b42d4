package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app/session"
	"github.com/jsamuelsen/quote-studio/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		fromGin    func(*gin.Context) string
		fromCtx    func(context.Context) string
	}{
		{
			name:       "request id",
			middleware: RequestID(),
			header:     HeaderRequestID,
			fromGin:    GetRequestID,
			fromCtx:    RequestIDFromContext,
		},
		{
			name:       "correlation id",
			middleware: CorrelationID(),
			header:     HeaderCorrelationID,
			fromGin:    GetCorrelationID,
			fromCtx:    CorrelationIDFromContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" generated", func(t *testing.T) {
			var ginID, ctxID string

			router := gin.New()
			router.Use(tt.middleware)
			router.GET("/", func(c *gin.Context) {
				ginID = tt.fromGin(c)
				ctxID = tt.fromCtx(c.Request.Context())
				c.Status(http.StatusOK)
			})

			w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

			_, err := uuid.Parse(ginID)
			require.NoError(t, err)
			assert.Equal(t, ginID, ctxID, "provider clients read the id from the request context")
			assert.Equal(t, ginID, w.Header().Get(tt.header))
		})

		t.Run(tt.name+" propagated", func(t *testing.T) {
			var ctxID string

			router := gin.New()
			router.Use(tt.middleware)
			router.GET("/", func(c *gin.Context) {
				ctxID = tt.fromCtx(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tt.header, "upstream-42")

			w := serve(router, req)

			assert.Equal(t, "upstream-42", ctxID)
			assert.Equal(t, "upstream-42", w.Header().Get(tt.header))
		})
	}
}

func TestIDFromContext_NotSet(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(context.Background()))

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestExtractClaims(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.AuthConfig
		headers     map[string]string
		wantSubject string
		wantRoles   []string
	}{
		{
			name:        "default headers",
			headers:     map[string]string{"X-User-ID": "ada", "X-User-Roles": "admin, editor ,,"},
			wantSubject: "ada",
			wantRoles:   []string{"admin", "editor"},
		},
		{
			name:        "configured headers",
			cfg:         &config.AuthConfig{SubjectHeader: "X-Sub", RolesHeader: "X-Roles"},
			headers:     map[string]string{"X-Sub": "grace", "X-Roles": "viewer", "X-User-ID": "ignored"},
			wantSubject: "grace",
			wantRoles:   []string{"viewer"},
		},
		{
			name: "no headers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			claims := ExtractClaims(c, tt.cfg)

			assert.Equal(t, tt.wantSubject, claims.Subject)
			assert.Equal(t, tt.wantRoles, claims.Roles)
		})
	}
}

func TestRequireRole(t *testing.T) {
	enabled := &config.AuthConfig{Enabled: true, AdminRole: "admin"}

	tests := []struct {
		name       string
		cfg        *config.AuthConfig
		headers    map[string]string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "auth disabled lets everyone through",
			cfg:        &config.AuthConfig{Enabled: false},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "nil config lets everyone through",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "anonymous caller",
			cfg:        enabled,
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeUnauthorized,
		},
		{
			name:       "missing role",
			cfg:        enabled,
			headers:    map[string]string{"X-User-ID": "ada", "X-User-Roles": "viewer"},
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrorCodeForbidden,
		},
		{
			name:       "admin",
			cfg:        enabled,
			headers:    map[string]string{"X-User-ID": "ada", "X-User-Roles": "viewer,admin"},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.DELETE("/history", RequireRole(tt.cfg, "admin"), func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodDelete, "/history", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := serve(router, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{name: "success", path: "/api/v1/themes", status: http.StatusOK, wantLevel: "INFO", wantLog: true},
		{name: "client error", path: "/api/v1/favorites/9", status: http.StatusNotFound, wantLevel: "WARN", wantLog: true},
		{name: "server error", path: "/api/v1/quotes/generate", status: http.StatusInternalServerError, wantLevel: "ERROR", wantLog: true},
		{name: "probes are skipped", path: "/-/live", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			router := gin.New()
			router.Use(Recovery(logger), RequestID(), Logging())
			router.Any("/*path", func(c *gin.Context) { c.Status(tt.status) })

			serve(router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.path, entry["path"])
			assert.InDelta(t, float64(tt.status), entry["status"], 0)
			assert.NotEmpty(t, entry["request_id"])
		})
	}
}

func TestLogging_ImageContentType(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(Recovery(logger), Logging())
	router.GET("/api/v1/quotes/image", func(c *gin.Context) {
		c.Data(http.StatusOK, "image/webp", []byte("RIFF"))
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/image?theme=love", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "image/webp", entry["content_type"])
	assert.Equal(t, "/api/v1/quotes/image?theme=love", entry["path"])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/panic", func(*gin.Context) { panic("palette table corrupted") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "palette")

	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "palette table corrupted")
}

func TestTimeout_SetsDeadline(t *testing.T) {
	var (
		deadline time.Time
		ok       bool
	)

	router := gin.New()
	router.Use(Timeout(2 * time.Second))
	router.GET("/", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	before := time.Now()
	serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.WithinDuration(t, before.Add(2*time.Second), deadline, time.Second)
}

func TestTimeout_ExpiredContext(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(time.Millisecond))
	router.GET("/", func(c *gin.Context) {
		<-c.Request.Context().Done()
		dto.HandleError(c, c.Request.Context().Err())
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeTimeout)
}

func TestSession_OnePerRequest(t *testing.T) {
	var sessions []*session.Session

	router := gin.New()
	router.Use(Session())
	router.GET("/", func(c *gin.Context) {
		s := session.FromContext(c.Request.Context())
		require.NotNil(t, s)
		sessions = append(sessions, s)

		calls := 0
		for range 2 {
			_, err := session.FetchCtx(c.Request.Context(), "weather", func(context.Context) (string, error) {
				calls++
				return "rain", nil
			})
			require.NoError(t, err)
		}

		assert.Equal(t, 1, calls)
		c.Status(http.StatusOK)
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, sessions, 2)
	assert.NotSame(t, sessions[0], sessions[1])
}
