package views

import (
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/school-management/sm-console/api"
	lf "github.com/school-management/sm-console/internal/logfield"
)

// StudentClient is the slice of the API client the students view drives.
type StudentClient interface {
	List(ctx context.Context, page, size int, search, level string) (*api.PageResponse, error)
	Create(ctx context.Context, student *api.Student) (*api.Student, error)
	Update(ctx context.Context, id int64, student *api.Student) (*api.Student, error)
	Delete(ctx context.Context, id int64) error
	ExportCSV(ctx context.Context, search, level string) ([]byte, error)
	ImportCSV(ctx context.Context, filename string, file io.Reader) (string, error)
}

// SessionCloser is the slice of the session store the view needs for logout
// and expiry recovery.
type SessionCloser interface {
	Clear() error
}

const defaultPageSize = 10

// StudentsState is a render snapshot of the students page.
type StudentsState struct {
	Students      []api.Student
	TotalElements int64
	Page          int
	Size          int
	SearchTerm    string
	SelectedLevel string

	ShowModal bool
	EditMode  bool
	Current   api.Student

	Error          string
	Message        string
	SessionExpired bool

	HasNext     bool
	HasPrevious bool
}

// StudentsView orchestrates listing, filtering, pagination, the create/edit
// modal, CSV transfer and session-expiry recovery.
type StudentsView struct {
	students StudentClient
	session  SessionCloser
	nav      Navigator
	log      *zap.Logger

	MessageTTL  time.Duration
	LogoutDelay time.Duration

	mu             sync.Mutex
	list           []api.Student
	totalElements  int64
	page           int
	size           int
	searchTerm     string
	selectedLevel  string
	showModal      bool
	editMode       bool
	current        api.Student
	errorMsg       string
	message        string
	sessionExpired bool
}

func NewStudentsView(students StudentClient, session SessionCloser, nav Navigator, log *zap.Logger) *StudentsView {
	return &StudentsView{
		students:    students,
		session:     session,
		nav:         nav,
		log:         log,
		MessageTTL:  DefaultMessageTTL,
		LogoutDelay: DefaultLogoutDelay,
		size:        defaultPageSize,
		current:     api.Student{Level: api.LevelFreshman},
	}
}

// Load fetches the current page. A 401/403 answer means the session expired:
// the message is shown immediately and the session is cleared after a short,
// visible delay.
func (v *StudentsView) Load(ctx context.Context) {
	v.mu.Lock()
	page, size, search, level := v.page, v.size, v.searchTerm, v.selectedLevel
	v.mu.Unlock()

	res, err := v.students.List(ctx, page, size, search, level)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		if isAuthError(err) {
			v.errorMsg = "Session expired. Please login again."
			v.sessionExpired = true
			v.log.Info("Session expired, scheduling logout")
			time.AfterFunc(v.LogoutDelay, func() {
				if err := v.session.Clear(); err != nil {
					v.log.Error("Failed to clear expired session", zap.Error(err))
				}
				v.nav.ToLogin()
			})
			return
		}
		v.errorMsg = "Failed to load students"
		v.log.Warn("Failed to load students", lf.Page(page), zap.Error(err))
		return
	}

	v.list = res.Content
	v.totalElements = res.TotalElements
	v.errorMsg = ""
	v.sessionExpired = false
}

// Search sets the free-text term and refetches from page 0.
func (v *StudentsView) Search(ctx context.Context, term string) {
	v.mu.Lock()
	v.searchTerm = term
	v.page = 0
	v.mu.Unlock()

	v.Load(ctx)
}

// Filter sets the level filter and refetches from page 0. Unknown levels are
// treated as "no filter".
func (v *StudentsView) Filter(ctx context.Context, level string) {
	if !slices.Contains(api.Levels, level) {
		level = ""
	}

	v.mu.Lock()
	v.selectedLevel = level
	v.page = 0
	v.mu.Unlock()

	v.Load(ctx)
}

// NextPage advances only while another page exists.
func (v *StudentsView) NextPage(ctx context.Context) {
	v.mu.Lock()
	if int64(v.page+1)*int64(v.size) >= v.totalElements {
		v.mu.Unlock()
		return
	}
	v.page++
	v.mu.Unlock()

	v.Load(ctx)
}

// PreviousPage retreats only off page 0.
func (v *StudentsView) PreviousPage(ctx context.Context) {
	v.mu.Lock()
	if v.page <= 0 {
		v.mu.Unlock()
		return
	}
	v.page--
	v.mu.Unlock()

	v.Load(ctx)
}

// OpenCreateModal opens the modal on a blank freshman record.
func (v *StudentsView) OpenCreateModal() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.editMode = false
	v.current = api.Student{Level: api.LevelFreshman}
	v.showModal = true
	v.errorMsg = ""
}

// OpenEditModal opens the modal on a copy of the selected record so
// in-progress edits never touch the list.
func (v *StudentsView) OpenEditModal(student api.Student) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.editMode = true
	v.current = student
	if student.ID != nil {
		id := *student.ID
		v.current.ID = &id
	}
	v.showModal = true
	v.errorMsg = ""
}

func (v *StudentsView) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeModalLocked()
}

func (v *StudentsView) closeModalLocked() {
	v.showModal = false
	v.current = api.Student{Level: api.LevelFreshman}
	v.errorMsg = ""
}

// SetDraft records the modal form fields.
func (v *StudentsView) SetDraft(username string, level api.Level) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current.Username = username
	if slices.Contains(api.Levels, level) {
		v.current.Level = level
	}
}

// Save routes to update when editing an already-persisted record, otherwise
// to create. An empty username is rejected before any network call.
func (v *StudentsView) Save(ctx context.Context) {
	v.mu.Lock()
	if v.current.Username == "" {
		v.errorMsg = "Username is required"
		v.mu.Unlock()
		return
	}
	editing := v.editMode && v.current.ID != nil
	student := v.current
	v.mu.Unlock()

	var err error
	if editing {
		_, err = v.students.Update(ctx, *student.ID, &student)
	} else {
		_, err = v.students.Create(ctx, &student)
	}

	v.mu.Lock()
	if err != nil {
		if editing {
			v.errorMsg = serverMessage(err, "Failed to update student")
		} else {
			v.errorMsg = serverMessage(err, "Failed to create student")
		}
		v.mu.Unlock()
		v.log.Warn("Failed to save student", lf.Username(student.Username), zap.Error(err))
		return
	}

	if editing {
		v.message = "Student updated successfully"
	} else {
		v.message = "Student created successfully"
	}
	v.closeModalLocked()
	v.mu.Unlock()

	v.Load(ctx)
	v.clearMessageLater()
}

// Delete removes the record. The browser asks for confirmation before the
// request ever reaches this method.
func (v *StudentsView) Delete(ctx context.Context, id int64) {
	err := v.students.Delete(ctx, id)

	v.mu.Lock()
	if err != nil {
		v.errorMsg = serverMessage(err, "Failed to delete student")
		v.mu.Unlock()
		v.log.Warn("Failed to delete student", lf.StudentID(id), zap.Error(err))
		return
	}
	v.message = "Student deleted successfully"
	v.mu.Unlock()

	v.log.Info("Deleted student", lf.StudentID(id))
	v.Load(ctx)
	v.clearMessageLater()
}

// Export fetches the CSV payload for the current filters. The caller streams
// it to the browser as a download.
func (v *StudentsView) Export(ctx context.Context) ([]byte, bool) {
	v.mu.Lock()
	search, level := v.searchTerm, v.selectedLevel
	v.mu.Unlock()

	payload, err := v.students.ExportCSV(ctx, search, level)

	v.mu.Lock()
	if err != nil {
		v.errorMsg = "Failed to export CSV"
		v.mu.Unlock()
		v.log.Warn("Failed to export csv", zap.Error(err))
		return nil, false
	}
	v.message = "CSV exported successfully"
	v.mu.Unlock()

	v.clearMessageLater()
	return payload, true
}

// Import uploads the selected file and shows the server's status line. The
// list is refreshed and the file input resets regardless of outcome.
func (v *StudentsView) Import(ctx context.Context, filename string, file io.Reader) {
	status, err := v.students.ImportCSV(ctx, filename, file)

	v.mu.Lock()
	if err != nil {
		v.errorMsg = "Failed to import CSV"
		v.mu.Unlock()
		v.log.Warn("Failed to import csv", zap.String("filename", filename), zap.Error(err))
		return
	}
	v.message = status
	v.mu.Unlock()

	v.log.Info("Imported csv", zap.String("filename", filename))
	v.Load(ctx)
	v.clearMessageLater()
}

// Logout unconditionally clears the session and navigates to login.
func (v *StudentsView) Logout() {
	if err := v.session.Clear(); err != nil {
		v.log.Error("Failed to clear session", zap.Error(err))
	}
	v.nav.ToLogin()
}

func (v *StudentsView) clearMessageLater() {
	time.AfterFunc(v.MessageTTL, func() {
		v.mu.Lock()
		v.message = ""
		v.mu.Unlock()
	})
}

// Snapshot returns a render copy of the current state with the pagination
// bounds already evaluated.
func (v *StudentsView) Snapshot() StudentsState {
	v.mu.Lock()
	defer v.mu.Unlock()

	students := make([]api.Student, len(v.list))
	copy(students, v.list)

	return StudentsState{
		Students:       students,
		TotalElements:  v.totalElements,
		Page:           v.page,
		Size:           v.size,
		SearchTerm:     v.searchTerm,
		SelectedLevel:  v.selectedLevel,
		ShowModal:      v.showModal,
		EditMode:       v.editMode,
		Current:        v.current,
		Error:          v.errorMsg,
		Message:        v.message,
		SessionExpired: v.sessionExpired,
		HasNext:        int64(v.page+1)*int64(v.size) < v.totalElements,
		HasPrevious:    v.page > 0,
	}
}
