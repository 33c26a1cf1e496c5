package web

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const sessionLoginKey = "login"

type loginService struct {
	webService
}

func setupLoginService(server *server, r *gin.Engine) {
	s := loginService{webService{server, server.config, server.logger}}

	r.GET(pathLogin, s.loginPage)
	r.POST(pathLogin, s.submit)
	r.GET("/logout", s.logout)
}

func (s loginService) loginPage(c *gin.Context) {
	// The sign-in/register toggle is a plain link carrying the wanted mode.
	if mode, ok := c.GetQuery("mode"); ok {
		registered := s.server.login.Snapshot().RegisterMode
		if (mode == "register") != registered {
			s.server.login.ToggleMode()
		}
	}

	s.server.RenderLoginPage(c)
}

func (s loginService) submit(c *gin.Context) {
	s.server.login.SetCredentials(
		c.PostForm("username"),
		c.PostForm("password"),
		c.PostForm("confirmPassword"),
	)
	s.server.login.Submit(c.Request.Context())

	if target := s.server.nav.Consume(); target != "" {
		// Successful sign-in. Remember who is at the console for display.
		session := sessions.Default(c)
		session.Set(sessionLoginKey, c.PostForm("username"))
		if err := session.Save(); err != nil {
			s.log.Error("Failed to save session cookie", zap.Error(err))
		}
		c.Redirect(http.StatusFound, target)
		return
	}

	s.server.RenderLoginPage(c)
}

func (s loginService) logout(c *gin.Context) {
	s.server.students.Logout()
	s.server.nav.Consume()

	session := sessions.Default(c)
	session.Delete(sessionLoginKey)
	if err := session.Save(); err != nil {
		s.log.Error("Failed to save session cookie", zap.Error(err))
	}

	c.Redirect(http.StatusFound, pathLogin)
}

func setupCookies(s *server, r *gin.Engine) error {
	authKey, err := hex.DecodeString(s.config.Server.Cookies.AuthenticationKey)
	if err != nil {
		return errors.Wrap(err, "Failed to decode hex authenticationKey")
	}
	encryptKey, err := hex.DecodeString(s.config.Server.Cookies.EncryptionKey)
	if err != nil {
		return errors.Wrap(err, "Failed to decode hex encryptionKey")
	}
	store := cookie.NewStore(authKey, encryptKey)
	store.Options(sessions.Options{
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("session", store))
	return nil
}

// requireSession guards the protected pages: without a credential every
// navigation attempt lands on the login view.
func (s *server) requireSession(c *gin.Context) {
	if !s.sessions.IsAuthenticated() {
		s.requestLogger(c).Info("Unauthenticated navigation denied", zap.String("path", c.Request.URL.Path))
		c.Redirect(http.StatusFound, pathLogin)
		c.Abort()
		return
	}
	c.Next()
}
