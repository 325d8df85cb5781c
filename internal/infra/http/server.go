package http

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmadalarjah/crypto-admin/internal/audit"
	"github.com/ahmadalarjah/crypto-admin/internal/config"
	"github.com/ahmadalarjah/crypto-admin/internal/domain"
	"github.com/ahmadalarjah/crypto-admin/internal/infra/db"
	"github.com/ahmadalarjah/crypto-admin/internal/infra/ratelimit"
)

// Server is the forwarding proxy: it accepts browser requests on
// relative /api paths and re-issues them against the fixed upstream
// origin. It never inspects or validates tokens; the Authorization
// header is relayed verbatim.
type Server struct {
	cfg      config.Config
	r        *gin.Engine
	upstream *url.URL
	client   *http.Client

	limiter  domain.RateLimiter
	recorder *audit.Recorder
}

type ServerDeps struct {
	HTTPClient  *http.Client
	RateLimiter domain.RateLimiter
	Audit       *audit.Recorder
}

func NewServer(cfg config.Config, store *db.Store) (*Server, error) {
	deps := ServerDeps{}
	if store != nil && store.DB != nil {
		deps.Audit = audit.NewRecorder(db.NewAuditEntryRepository(store.DB))
	}
	if cfg.RateLimitRequests > 0 {
		if cfg.RedisAddr != "" {
			if limiter, err := ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, nil); err == nil {
				deps.RateLimiter = limiter
			}
		}
		if deps.RateLimiter == nil {
			deps.RateLimiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{
				MaxKeys: cfg.RateLimitMaxKeys,
			})
		}
	}
	return NewServerWithDeps(cfg, deps)
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) (*Server, error) {
	upstream, err := url.Parse(strings.TrimRight(cfg.UpstreamBaseURL, "/"))
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(recoveryHandler))

	s := &Server{
		cfg:      cfg,
		r:        r,
		upstream: upstream,
		client:   deps.HTTPClient,
		limiter:  deps.RateLimiter,
		recorder: deps.Audit,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.r.Use(requestIDMiddleware())
	if s.limiter != nil && s.cfg.RateLimitRequests > 0 {
		s.r.Use(rateLimitMiddleware(s.limiter, s.cfg.RateLimitRequests, s.cfg.RateLimitWindow()))
	}

	s.r.GET("/api/health", s.handleHealth)

	for _, prefix := range []string{"auth", "admin"} {
		group := s.r.Group("/api/" + prefix)
		handler := s.handleForward(prefix)
		group.GET("/*path", handler)
		group.POST("/*path", handler)
		group.PUT("/*path", handler)
		group.DELETE("/*path", handler)
	}

	s.r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody{Message: "not found"})
	})
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.r
}

func (s *Server) Run() error {
	log.Printf("admin gateway listening on %s, upstream %s", s.cfg.HTTPAddr, s.upstream)
	return s.r.Run(s.cfg.HTTPAddr)
}

// errorBody is the proxy's structured error envelope.
type errorBody struct {
	Message string `json:"message"`
}

func recoveryHandler(c *gin.Context, recovered any) {
	message := "Internal server error"
	switch v := recovered.(type) {
	case error:
		if v.Error() != "" {
			message = v.Error()
		}
	case string:
		if v != "" {
			message = v
		}
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{Message: message})
}

func (s *Server) httpClient() *http.Client {
	if s.client != nil {
		return s.client
	}
	return http.DefaultClient
}

// elapsedMS is how audit latency is computed from a start time.
func elapsedMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
