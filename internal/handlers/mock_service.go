package handlers

import (
	"context"
	"net/http"

	"gamestore/internal/models"
	"gamestore/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID    int
	registerErr   error
	loginToken    string
	loginErr      error
	authUser      *models.User
	authErr       error
	logoutErr     error
	changePassErr error

	lastRegisterUsername string
	lastRegisterEmail    string
	lastRegisterPassword string
	lastLoginEmail       string
	lastLoginPassword    string
	lastAuthToken        string
	lastLogoutToken      string
	lastChangeEmail      string
	lastChangePassword   string
	logoutCalls          int
}

func (m *mockAuth) Register(ctx context.Context, username, email, password string) (int, error) {
	m.lastRegisterUsername = username
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	m.lastAuthToken = accessToken
	return m.authUser, m.authErr
}

func (m *mockAuth) Logout(ctx context.Context, accessToken string) error {
	m.lastLogoutToken = accessToken
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuth) ChangePassword(ctx context.Context, email, newPassword string) error {
	m.lastChangeEmail = email
	m.lastChangePassword = newPassword
	return m.changePassErr
}

type mockFreeGames struct {
	created   *models.FreeGame
	createErr error
	list      []models.FreeGame
	listErr   error
	got       *models.FreeGame
	getErr    error
	updateErr error
	deleted   int64
	deleteErr error

	lastCreate     models.FreeGame
	lastGetName    string
	lastUpdateID   int
	lastUpdate     models.FreeGame
	lastDeleteName string
}

func (m *mockFreeGames) Create(ctx context.Context, g models.FreeGame) (*models.FreeGame, error) {
	m.lastCreate = g
	return m.created, m.createErr
}

func (m *mockFreeGames) List(ctx context.Context) ([]models.FreeGame, error) {
	return m.list, m.listErr
}

func (m *mockFreeGames) GetByName(ctx context.Context, name string) (*models.FreeGame, error) {
	m.lastGetName = name
	return m.got, m.getErr
}

func (m *mockFreeGames) Update(ctx context.Context, id int, g models.FreeGame) error {
	m.lastUpdateID = id
	m.lastUpdate = g
	return m.updateErr
}

func (m *mockFreeGames) DeleteByName(ctx context.Context, name string) (int64, error) {
	m.lastDeleteName = name
	return m.deleted, m.deleteErr
}

type mockOfficialGames struct {
	created   *models.OfficialGame
	createErr error
	list      []models.OfficialGame
	listErr   error
	got       *models.OfficialGame
	getErr    error
	updateErr error
	deleted   int64
	deleteErr error

	lastCreate     models.OfficialGame
	lastGetName    string
	lastUpdateID   int
	lastUpdate     models.OfficialGame
	lastDeleteName string
}

func (m *mockOfficialGames) Create(ctx context.Context, g models.OfficialGame) (*models.OfficialGame, error) {
	m.lastCreate = g
	return m.created, m.createErr
}

func (m *mockOfficialGames) List(ctx context.Context) ([]models.OfficialGame, error) {
	return m.list, m.listErr
}

func (m *mockOfficialGames) GetByName(ctx context.Context, name string) (*models.OfficialGame, error) {
	m.lastGetName = name
	return m.got, m.getErr
}

func (m *mockOfficialGames) Update(ctx context.Context, id int, g models.OfficialGame) error {
	m.lastUpdateID = id
	m.lastUpdate = g
	return m.updateErr
}

func (m *mockOfficialGames) DeleteByName(ctx context.Context, name string) (int64, error) {
	m.lastDeleteName = name
	return m.deleted, m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
