package handlers

import (
	"context"
	"net/http"

	"personal_blog/internal/models"
	"personal_blog/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser    models.User
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUp      service.SignUpParams
	lastGenHandle   string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) SignUp(ctx context.Context, p service.SignUpParams) (models.User, error) {
	m.lastSignUp = p
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, handle, password string) (string, error) {
	m.lastGenHandle = handle
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockUsers struct {
	listResp   []models.User
	listErr    error
	getResp    models.User
	getErr     error
	updateResp models.User
	updateErr  error
	deleteErr  error

	lastUpdate   service.UpdateUserParams
	lastDeleteID int
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}
func (m *mockUsers) GetByID(ctx context.Context, id int) (models.User, error) {
	return m.getResp, m.getErr
}
func (m *mockUsers) Update(ctx context.Context, p service.UpdateUserParams) (models.User, error) {
	m.lastUpdate = p
	return m.updateResp, m.updateErr
}
func (m *mockUsers) Delete(ctx context.Context, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockPosts struct {
	listResp   []models.Post
	listErr    error
	getResp    models.Post
	getErr     error
	searchResp []models.Post
	searchErr  error
	createResp models.Post
	createErr  error
	updateResp models.Post
	updateErr  error
	deleteErr  error

	lastCreate   service.CreatePostParams
	lastUpdate   service.UpdatePostParams
	lastSearch   string
	lastDeleteID int
}

func (m *mockPosts) List(ctx context.Context) ([]models.Post, error) {
	return m.listResp, m.listErr
}
func (m *mockPosts) GetByID(ctx context.Context, id int) (models.Post, error) {
	return m.getResp, m.getErr
}
func (m *mockPosts) SearchByTitle(ctx context.Context, q string) ([]models.Post, error) {
	m.lastSearch = q
	return m.searchResp, m.searchErr
}
func (m *mockPosts) Create(ctx context.Context, p service.CreatePostParams) (models.Post, error) {
	m.lastCreate = p
	return m.createResp, m.createErr
}
func (m *mockPosts) Update(ctx context.Context, p service.UpdatePostParams) (models.Post, error) {
	m.lastUpdate = p
	return m.updateResp, m.updateErr
}
func (m *mockPosts) Delete(ctx context.Context, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockThemes struct {
	listResp   []models.Theme
	listErr    error
	getResp    models.Theme
	getErr     error
	searchResp []models.Theme
	searchErr  error
	createResp models.Theme
	createErr  error
	updateResp models.Theme
	updateErr  error
	deleteErr  error

	lastCreate   string
	lastUpdate   models.Theme
	lastDeleteID int
}

func (m *mockThemes) List(ctx context.Context) ([]models.Theme, error) {
	return m.listResp, m.listErr
}
func (m *mockThemes) GetByID(ctx context.Context, id int) (models.Theme, error) {
	return m.getResp, m.getErr
}
func (m *mockThemes) SearchByDescription(ctx context.Context, q string) ([]models.Theme, error) {
	return m.searchResp, m.searchErr
}
func (m *mockThemes) Create(ctx context.Context, description string) (models.Theme, error) {
	m.lastCreate = description
	return m.createResp, m.createErr
}
func (m *mockThemes) Update(ctx context.Context, t models.Theme) (models.Theme, error) {
	m.lastUpdate = t
	return m.updateResp, m.updateErr
}
func (m *mockThemes) Delete(ctx context.Context, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockFeed struct {
	published []service.FeedEvent
}

func (m *mockFeed) Subscribe() (<-chan service.FeedEvent, func()) {
	ch := make(chan service.FeedEvent)
	return ch, func() { close(ch) }
}
func (m *mockFeed) Publish(ev service.FeedEvent) {
	m.published = append(m.published, ev)
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
