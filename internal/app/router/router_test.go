package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	articleadapters "cms_backend/internal/feature/articles/adapters"
	articleentity "cms_backend/internal/feature/articles/domain/entity"
	articlehandler "cms_backend/internal/feature/articles/transport/handler"
	articleusecase "cms_backend/internal/feature/articles/usecase"
	authadapters "cms_backend/internal/feature/auth/adapters"
	authentity "cms_backend/internal/feature/auth/domain/entity"
	authhandler "cms_backend/internal/feature/auth/transport/handler"
	authmw "cms_backend/internal/feature/auth/transport/middleware"
	authusecase "cms_backend/internal/feature/auth/usecase"
	contactadapters "cms_backend/internal/feature/contact/adapters"
	contactentity "cms_backend/internal/feature/contact/domain/entity"
	contacthandler "cms_backend/internal/feature/contact/transport/handler"
	contactusecase "cms_backend/internal/feature/contact/usecase"
	contentadapters "cms_backend/internal/feature/content/adapters"
	contententity "cms_backend/internal/feature/content/domain/entity"
	contenthandler "cms_backend/internal/feature/content/transport/handler"
	contentusecase "cms_backend/internal/feature/content/usecase"
	documentadapters "cms_backend/internal/feature/documents/adapters"
	documententity "cms_backend/internal/feature/documents/domain/entity"
	documenthandler "cms_backend/internal/feature/documents/transport/handler"
	documentusecase "cms_backend/internal/feature/documents/usecase"
	memberadapters "cms_backend/internal/feature/members/adapters"
	memberentity "cms_backend/internal/feature/members/domain/entity"
	memberhandler "cms_backend/internal/feature/members/transport/handler"
	memberusecase "cms_backend/internal/feature/members/usecase"
	projectadapters "cms_backend/internal/feature/projects/adapters"
	projectentity "cms_backend/internal/feature/projects/domain/entity"
	projecthandler "cms_backend/internal/feature/projects/transport/handler"
	projectusecase "cms_backend/internal/feature/projects/usecase"
	seedhandler "cms_backend/internal/feature/seed/transport/handler"
	seedusecase "cms_backend/internal/feature/seed/usecase"
	statsadapters "cms_backend/internal/feature/stats/adapters"
	statshandler "cms_backend/internal/feature/stats/transport/handler"
	statsusecase "cms_backend/internal/feature/stats/usecase"
	platformjwt "cms_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// newTestServer wires the whole application against an in-memory SQLite
// database, the way main does against Postgres.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authentity.User{},
		&projectentity.Project{},
		&articleentity.Article{},
		&memberentity.Member{},
		&documententity.Document{},
		&contactentity.Message{},
		&contententity.Snippet{},
	))

	issuer := platformjwt.NewIssuer("test-secret", time.Hour)

	authUC := authusecase.NewAuthUsecase(authadapters.NewUserRepository(db), issuer)
	projectUC := projectusecase.NewProjectUsecase(projectadapters.NewProjectRepository(db))
	articleUC := articleusecase.NewArticleUsecase(articleadapters.NewArticleRepository(db))
	memberUC := memberusecase.NewMemberUsecase(memberadapters.NewMemberRepository(db))
	documentUC := documentusecase.NewDocumentUsecase(documentadapters.NewDocumentRepository(db))
	contactUC := contactusecase.NewContactUsecase(contactadapters.NewMessageRepository(db))
	contentUC := contentusecase.NewContentUsecase(contentadapters.NewSnippetRepository(db))
	statsUC := statsusecase.NewStatsUsecase(statsadapters.NewStatsRepository(db))
	seedUC := seedusecase.NewSeedUsecase(db)

	handlers := Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Projects:  projecthandler.NewProjectHandler(projectUC),
		Articles:  articlehandler.NewArticleHandler(articleUC),
		Members:   memberhandler.NewMemberHandler(memberUC),
		Documents: documenthandler.NewDocumentHandler(documentUC),
		Contact:   contacthandler.NewContactHandler(contactUC),
		Content:   contenthandler.NewContentHandler(contentUC),
		Stats:     statshandler.NewStatsHandler(statsUC),
		Seed:      seedhandler.NewSeedHandler(seedUC),
	}

	engine := New(handlers,
		authmw.Authenticated(issuer, authUC),
		authmw.AdminOnly(),
		[]string{"http://localhost:3000"},
	)
	return engine, db
}

func do(t *testing.T, engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// register creates an admin account and returns its access token.
func register(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()

	w := do(t, engine, http.MethodPost, "/api/auth/register", "",
		`{"email":"`+email+`","password":"Password1!","name":"Test Admin"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealthz(t *testing.T) {
	engine, _ := newTestServer(t)

	w := do(t, engine, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterThenManageProjects(t *testing.T) {
	engine, _ := newTestServer(t)
	token := register(t, engine, "admin@example.com")

	// Admin writes require the token.
	body := `{"title":"Clean water","description":"Wells in rural areas","objectives":"Build 10 wells"}`
	w := do(t, engine, http.MethodPost, "/api/projects", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing bearer token")

	w = do(t, engine, http.MethodPost, "/api/projects", token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ongoing", created.Status)

	// Public read works without any token.
	w = do(t, engine, http.MethodGet, "/api/projects/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Clean water")

	// Delete and confirm it is gone.
	w = do(t, engine, http.MethodDelete, "/api/projects/"+created.ID, token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodGet, "/api/projects/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateRegistration(t *testing.T) {
	engine, _ := newTestServer(t)
	register(t, engine, "admin@example.com")

	w := do(t, engine, http.MethodPost, "/api/auth/register", "",
		`{"email":"admin@example.com","password":"Password1!","name":"Second"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
}

func TestLoginAndMe(t *testing.T) {
	engine, _ := newTestServer(t)
	register(t, engine, "admin@example.com")

	w := do(t, engine, http.MethodPost, "/api/auth/login", "",
		`{"email":"admin@example.com","password":"Password1!"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)

	w = do(t, engine, http.MethodGet, "/api/auth/me", resp.AccessToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
	assert.NotContains(t, w.Body.String(), "Password1!")
}

func TestNonAdminForbidden(t *testing.T) {
	engine, db := newTestServer(t)

	// A viewer account written straight to storage: registration always
	// grants admin, so a downgraded role must come from the database.
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&authentity.User{
		ID:       "viewer-1",
		Email:    "viewer@example.com",
		Name:     "Viewer",
		Password: string(hashed),
		Role:     "viewer",
	}).Error)

	w := do(t, engine, http.MethodPost, "/api/auth/login", "",
		`{"email":"viewer@example.com","password":"Password1!"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Authenticated route is fine.
	w = do(t, engine, http.MethodGet, "/api/auth/me", resp.AccessToken, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin route is not.
	w = do(t, engine, http.MethodGet, "/api/admin/stats", resp.AccessToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin access required")
}

func TestContactFlow(t *testing.T) {
	engine, _ := newTestServer(t)
	token := register(t, engine, "admin@example.com")

	w := do(t, engine, http.MethodPost, "/api/contact", "",
		`{"name":"visitor","email":"visitor@example.com","subject":"donation","message":"How can I donate?"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "message sent")

	// Reading the inbox is admin only.
	w = do(t, engine, http.MethodGet, "/api/contact", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, engine, http.MethodGet, "/api/contact", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "donation")
	assert.Contains(t, w.Body.String(), `"read":false`)
}

func TestContentMissingKeyIsEmpty(t *testing.T) {
	engine, _ := newTestServer(t)

	w := do(t, engine, http.MethodGet, "/api/content/mission", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"mission"`)
	assert.Contains(t, w.Body.String(), `"value":""`)
}

func TestSeedAndStats(t *testing.T) {
	engine, _ := newTestServer(t)

	w := do(t, engine, http.MethodPost, "/api/seed", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "demo data created")
	assert.Contains(t, w.Body.String(), seedusecase.DefaultAdminEmail)

	// Second call is a no-op.
	w = do(t, engine, http.MethodPost, "/api/seed", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "demo data already present")

	// The seeded admin can log in.
	w = do(t, engine, http.MethodPost, "/api/auth/login", "",
		`{"email":"`+seedusecase.DefaultAdminEmail+`","password":"`+seedusecase.DefaultAdminPassword+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Public stats reflect the demo data.
	w = do(t, engine, http.MethodGet, "/api/stats", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var public struct {
		ProjectsCount int64 `json:"projects_count"`
		ArticlesCount int64 `json:"articles_count"`
		MembersCount  int64 `json:"members_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	assert.EqualValues(t, 3, public.ProjectsCount)
	assert.EqualValues(t, 2, public.ArticlesCount)
	assert.EqualValues(t, 3, public.MembersCount)

	// Admin stats need the token.
	w = do(t, engine, http.MethodGet, "/api/admin/stats", resp.AccessToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending_members":0`)
}

func TestMembershipApplicationFlow(t *testing.T) {
	engine, _ := newTestServer(t)
	token := register(t, engine, "admin@example.com")

	// Public application.
	w := do(t, engine, http.MethodPost, "/api/members/apply", "",
		`{"name":"alice","email":"alice@example.com","phone":"555-0100","motivation":"I want to help"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var applied struct {
		ID       string `json:"id"`
		Approved bool   `json:"approved"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &applied))
	assert.False(t, applied.Approved)

	// Pending applications are hidden from the public listing.
	w = do(t, engine, http.MethodGet, "/api/members", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "alice")

	// Admin sees and approves the application.
	w = do(t, engine, http.MethodGet, "/api/members/pending", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")

	w = do(t, engine, http.MethodPut, "/api/members/"+applied.ID+"/approve?member_type=honorary", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Now public.
	w = do(t, engine, http.MethodGet, "/api/members", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), `"member_type":"honorary"`)
}
