package web

import (
	"html/template"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/school-management/sm-console/internal/config"
	lf "github.com/school-management/sm-console/internal/logfield"
	"github.com/school-management/sm-console/internal/session"
	"github.com/school-management/sm-console/internal/views"
	"github.com/school-management/sm-console/pkg/client/studentapi"
	"github.com/school-management/sm-console/web"
)

const (
	pathLogin    = "/login"
	pathStudents = "/students"
)

type server struct {
	config *config.Config
	logger *zap.Logger

	sessions *session.Store
	client   *studentapi.Client
	nav      *redirector

	login    *views.LoginView
	students *views.StudentsView

	maxImportSize int64
}

func newServer(cfg *config.Config, logger *zap.Logger) (*server, error) {
	stash, err := newStash(cfg)
	if err != nil {
		return nil, err
	}
	sessions, err := session.NewStore(stash)
	if err != nil {
		return nil, err
	}

	maxImportSize, err := cfg.MaxImportSizeBytes()
	if err != nil {
		return nil, err
	}

	sessions.Subscribe(func(token string) {
		logger.Info("Session state changed", zap.Bool("authenticated", token != ""))
	})

	client := studentapi.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, sessions)
	nav := &redirector{}

	return &server{
		config:        cfg,
		logger:        logger,
		sessions:      sessions,
		client:        client,
		nav:           nav,
		login:         views.NewLoginView(client, nav, logger.Named("login")),
		students:      views.NewStudentsView(client, sessions, nav, logger.Named("students")),
		maxImportSize: maxImportSize,
	}, nil
}

func newStash(cfg *config.Config) (session.Stash, error) {
	switch cfg.Session.Backend {
	case "redis":
		return session.NewRedisStash(cfg.Session.Redis.Addr, cfg.Session.Redis.Password, cfg.Session.Redis.DB)
	case "file", "":
		return session.NewFileStash(cfg.Session.DataDir)
	default:
		return nil, errors.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func buildHTMLTemplates(funcMap template.FuncMap) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(web.Templates, "*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse html templates")
	}
	return tmpl, nil
}

func (s *server) run() error {
	funcs := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
	}
	tmpl, err := buildHTMLTemplates(funcs)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))
	r.Use(s.requestID)

	r.SetHTMLTemplate(tmpl)

	if err := setupCookies(s, r); err != nil {
		return err
	}
	setupLoginService(s, r)
	setupStudentsService(s, r)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, pathStudents)
	})
	r.StaticFS("/static", http.FS(web.Static))

	s.logger.Info("Starting server", zap.String("bind_address", s.config.Server.ListenAddress))
	return r.Run(s.config.Server.ListenAddress)
}

func (s *server) requestID(c *gin.Context) {
	id := uuid.New().String()
	c.Set("request_id", id)
	c.Header("X-Request-Id", id)
	c.Next()
}

func (s *server) requestLogger(c *gin.Context) *zap.Logger {
	if id, ok := c.Get("request_id"); ok {
		return s.logger.With(lf.RequestID(id.(string)))
	}
	return s.logger
}

// redirector is the Navigator the views drive. The target set during a
// request is consumed by its handler; a target set by a delayed expiry logout
// has no request to serve and is swallowed by the next action, where the
// route guard would force the same destination anyway.
type redirector struct {
	target atomic.String
}

func (r *redirector) ToLogin() {
	r.target.Store(pathLogin)
}

func (r *redirector) ToStudents() {
	r.target.Store(pathStudents)
}

func (r *redirector) Consume() string {
	return r.target.Swap("")
}
