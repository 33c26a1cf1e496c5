package web

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/school-management/sm-console/api"
)

const consoleName = "Student Records Console"

var allLevels = api.Levels

func (s *server) RenderLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"ConsoleName": consoleName,
		"State":       s.login.Snapshot(),
	})
}

func (s *server) RenderStudentsPage(c *gin.Context) {
	operator := ""
	if v := sessions.Default(c).Get(sessionLoginKey); v != nil {
		operator, _ = v.(string)
	}

	c.HTML(http.StatusOK, "students.tmpl", gin.H{
		"ConsoleName": consoleName,
		"Operator":    operator,
		"Levels":      allLevels,
		"State":       s.students.Snapshot(),
	})
}
