package views

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	lf "github.com/school-management/sm-console/internal/logfield"
)

// AuthClient is the slice of the API client the login view needs.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) (string, error)
}

// LoginState is a render snapshot of the login page.
type LoginState struct {
	Username     string
	Error        string
	Message      string
	Loading      bool
	RegisterMode bool
}

// LoginView toggles between sign-in and registration, validates credentials
// before any network call and surfaces server errors.
type LoginView struct {
	auth AuthClient
	nav  Navigator
	log  *zap.Logger

	MessageTTL time.Duration

	mu              sync.Mutex
	username        string
	password        string
	confirmPassword string
	errorMsg        string
	message         string
	loading         bool
	registerMode    bool
}

func NewLoginView(auth AuthClient, nav Navigator, log *zap.Logger) *LoginView {
	return &LoginView{
		auth:       auth,
		nav:        nav,
		log:        log,
		MessageTTL: DefaultMessageTTL,
	}
}

// ToggleMode switches sign-in ⇄ register. The username survives; passwords
// and feedback do not.
func (v *LoginView) ToggleMode() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.registerMode = !v.registerMode
	v.errorMsg = ""
	v.message = ""
	v.password = ""
	v.confirmPassword = ""
}

// SetCredentials records the submitted form fields.
func (v *LoginView) SetCredentials(username, password, confirmPassword string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.username = username
	v.password = password
	v.confirmPassword = confirmPassword
}

// Submit validates the form and performs the sign-in or registration call.
// Validation failures set the error synchronously and never reach the network.
func (v *LoginView) Submit(ctx context.Context) {
	v.mu.Lock()

	if v.username == "" || v.password == "" {
		v.errorMsg = "Username and password are required"
		v.mu.Unlock()
		return
	}

	if v.registerMode {
		if len(v.password) < 6 {
			v.errorMsg = "Password must be at least 6 characters"
			v.mu.Unlock()
			return
		}
		if v.password != v.confirmPassword {
			v.errorMsg = "Passwords do not match"
			v.mu.Unlock()
			return
		}
		v.mu.Unlock()
		v.register(ctx)
		return
	}

	v.mu.Unlock()
	v.login(ctx)
}

func (v *LoginView) login(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.errorMsg = ""
	username, password := v.username, v.password
	v.mu.Unlock()

	_, err := v.auth.Login(ctx, username, password)

	v.mu.Lock()
	if err != nil {
		v.loading = false
		v.errorMsg = serverMessage(err, "Login failed. Please check your credentials.")
		v.mu.Unlock()
		v.log.Info("Login failed", lf.Username(username), zap.Error(err))
		return
	}
	v.loading = false
	v.mu.Unlock()

	v.log.Info("Login succeeded", lf.Username(username))
	v.nav.ToStudents()
}

func (v *LoginView) register(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.errorMsg = ""
	username, password := v.username, v.password
	v.mu.Unlock()

	_, err := v.auth.Register(ctx, username, password)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMsg = serverMessage(err, "Registration failed. Username may already exist.")
		v.log.Info("Registration failed", lf.Username(username), zap.Error(err))
		return
	}

	v.message = "Registration successful! You can now login."
	v.registerMode = false
	v.password = ""
	v.confirmPassword = ""
	v.log.Info("Registered admin", lf.Username(username))

	time.AfterFunc(v.MessageTTL, func() {
		v.mu.Lock()
		v.message = ""
		v.mu.Unlock()
	})
}

// Snapshot returns a render copy of the current state. Passwords are never
// exposed to templates.
func (v *LoginView) Snapshot() LoginState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return LoginState{
		Username:     v.username,
		Error:        v.errorMsg,
		Message:      v.message,
		Loading:      v.loading,
		RegisterMode: v.registerMode,
	}
}
