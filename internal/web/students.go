package web

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/school-management/sm-console/internal/roster"
)

type studentsService struct {
	webService
}

func setupStudentsService(server *server, r *gin.Engine) {
	s := studentsService{webService{server, server.config, server.logger}}

	guarded := r.Group(pathStudents, server.requireSession)
	guarded.GET("", s.page)
	guarded.GET("/next", s.nextPage)
	guarded.GET("/prev", s.previousPage)
	guarded.GET("/new", s.openCreate)
	guarded.GET("/:id/edit", s.openEdit)
	guarded.GET("/modal/close", s.closeModal)
	guarded.POST("/save", s.save)
	guarded.POST("/delete", s.remove)
	guarded.GET("/export", s.exportCSV)
	guarded.POST("/import", s.importCSV)
}

// page fetches and renders the current query. A submitted search or filter
// resets to page 0 before the fetch.
func (s studentsService) page(c *gin.Context) {
	ctx := c.Request.Context()
	state := s.server.students.Snapshot()
	query := c.Request.URL.Query()

	search, level := c.Query("search"), c.Query("level")
	switch {
	case query.Has("search") && search != state.SearchTerm:
		s.server.students.Search(ctx, search)
		if query.Has("level") && level != state.SelectedLevel {
			s.server.students.Filter(ctx, level)
		}
	case query.Has("level") && level != state.SelectedLevel:
		s.server.students.Filter(ctx, level)
	default:
		s.server.students.Load(ctx)
	}

	s.server.RenderStudentsPage(c)
}

func (s studentsService) nextPage(c *gin.Context) {
	s.server.students.NextPage(c.Request.Context())
	s.server.RenderStudentsPage(c)
}

func (s studentsService) previousPage(c *gin.Context) {
	s.server.students.PreviousPage(c.Request.Context())
	s.server.RenderStudentsPage(c)
}

func (s studentsService) openCreate(c *gin.Context) {
	s.server.students.OpenCreateModal()
	s.server.RenderStudentsPage(c)
}

func (s studentsService) openEdit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, pathStudents)
		return
	}

	for _, student := range s.server.students.Snapshot().Students {
		if student.ID != nil && *student.ID == id {
			s.server.students.OpenEditModal(student)
			break
		}
	}
	s.server.RenderStudentsPage(c)
}

func (s studentsService) closeModal(c *gin.Context) {
	s.server.students.CloseModal()
	c.Redirect(http.StatusFound, pathStudents)
}

func (s studentsService) save(c *gin.Context) {
	s.server.students.SetDraft(c.PostForm("username"), c.PostForm("level"))
	s.server.students.Save(c.Request.Context())
	s.server.RenderStudentsPage(c)
}

func (s studentsService) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, pathStudents)
		return
	}

	s.server.students.Delete(c.Request.Context(), id)
	c.Redirect(http.StatusFound, pathStudents)
}

func (s studentsService) exportCSV(c *gin.Context) {
	payload, ok := s.server.students.Export(c.Request.Context())
	if !ok {
		s.server.RenderStudentsPage(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="students.csv"`)
	c.Data(http.StatusOK, "text/csv", payload)
}

func (s studentsService) importCSV(c *gin.Context) {
	log := s.server.requestLogger(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.server.maxImportSize)
	header, err := c.FormFile("file")
	if err != nil {
		log.Warn("Rejected import upload", zap.Error(err))
		c.Redirect(http.StatusFound, pathStudents)
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Warn("Failed to open import upload", zap.Error(err))
		c.Redirect(http.StatusFound, pathStudents)
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	if roster.IsXLSX(header.Filename) {
		// The remote API accepts CSV only; workbooks are converted here.
		csv, err := roster.ConvertXLSX(file)
		if err != nil {
			log.Warn("Failed to convert workbook", zap.String("filename", header.Filename), zap.Error(err))
			c.Redirect(http.StatusFound, pathStudents)
			return
		}
		name := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)) + ".csv"
		s.server.students.Import(ctx, name, bytes.NewReader(csv))
	} else {
		s.server.students.Import(ctx, header.Filename, file)
	}

	c.Redirect(http.StatusFound, pathStudents)
}
