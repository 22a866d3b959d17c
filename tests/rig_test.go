package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/config"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/handler"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/middleware"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// rig is a full HTTP stack wired onto in-memory stubs: real handlers, real
// middleware, real services, no Postgres, no Redis, no SMTP.
type rig struct {
	engine     *gin.Engine
	store      *memSessionStore
	collabs    *stubCollaboratorRepo
	admins     *stubAdminRepo
	leaves     *stubLeaveRepo
	notifs     *stubNotificationRepo
	banners    *stubBannerRepo
	entries    *stubTimeEntryRepo
	dispatcher *fakeDispatcher
	cfg        *config.Config
}

func newRig(t *testing.T) *rig {
	t.Helper()

	r := &rig{
		store:      newMemSessionStore(),
		collabs:    newStubCollaboratorRepo(),
		admins:     newStubAdminRepo(),
		leaves:     newStubLeaveRepo(),
		notifs:     newStubNotificationRepo(),
		banners:    &stubBannerRepo{},
		dispatcher: &fakeDispatcher{},
		cfg: &config.Config{
			Env:               "development",
			SessionTTLHours:   1,
			SessionCookieName: "tb_session",
			PDFStoragePath:    t.TempDir(),
		},
	}
	r.entries = &stubTimeEntryRepo{collabs: r.collabs}

	authSvc := service.NewAuthService(r.collabs, r.admins, r.store)
	collabSvc := service.NewCollaboratorService(r.collabs, r.entries, r.leaves, r.notifs, r.admins)
	adminSvc := service.NewAdminService(r.collabs, r.admins, r.leaves, r.notifs, nil)
	entrySvc := service.NewTimeEntryService(r.entries, r.collabs, r.cfg.PDFStoragePath)
	leaveSvc := service.NewLeaveService(r.leaves, r.collabs, r.notifs, r.dispatcher)
	bannerSvc := service.NewBannerService(r.banners, nil)

	authH := handler.NewAuthHandler(authSvc, r.cfg)
	collabH := handler.NewCollaboratorHandler(collabSvc)
	adminH := handler.NewAdminHandler(adminSvc)
	entriesH := handler.NewTimeEntriesHandler(entrySvc)
	leaveH := handler.NewLeaveHandler(leaveSvc)
	bannersH := handler.NewBannersHandler(bannerSvc)

	e := gin.New()
	e.Use(middleware.SessionAuth(r.store, r.cfg.SessionCookieName))

	e.GET("/v1/info-banners", bannersH.PublicList)

	auth := e.Group("/v1/auth")
	{
		auth.POST("/collaborator-login", authH.CollaboratorLogin)
		auth.POST("/admin-login", authH.AdminLogin)
		auth.POST("/setup-access-code", middleware.RequirePendingSetup(), authH.SetupAccessCode)
		auth.GET("/session", authH.GetSession)
		auth.POST("/logout", authH.Logout)
	}

	me := e.Group("/v1/me", middleware.RequireCollaborator())
	{
		me.GET("", collabH.Profile)
		me.GET("/history", collabH.History)
		me.POST("/leave-requests", collabH.SubmitLeave)
		me.GET("/leave-requests", collabH.MyLeaveRequests)
		me.GET("/notifications", collabH.Notifications)
		me.POST("/notifications/mark-read", collabH.MarkNotificationsRead)
	}

	admin := e.Group("/v1/admin", middleware.RequireAdmin(r.admins))
	{
		admin.GET("/notifications", adminH.Notifications)
		admin.POST("/notifications/mark-read", adminH.MarkNotificationsRead)
		admin.POST("/collaborators", middleware.RequireCapability(r.admins, middleware.CapCreateCollaborator), adminH.CreateCollaborator)
		admin.GET("/collaborators", adminH.ListCollaborators)
		admin.POST("/collaborators/:id/reset-access-code", middleware.RequireCapability(r.admins, middleware.CapChangeAccessCode), adminH.ResetAccessCode)
		admin.POST("/administrators", middleware.RequireCapability(r.admins, middleware.CapCreateAdmin), adminH.CreateAdmin)
		admin.POST("/time-entries", middleware.RequireCapability(r.admins, middleware.CapEnterHours), entriesH.Create)
		admin.GET("/collaborators/:id/time-entries", entriesH.ListByCollaborator)
		admin.GET("/leave-requests", leaveH.List)
		admin.POST("/leave-requests/:id/review", leaveH.Review)
	}

	r.engine = e
	return r
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedCollaborator(t *testing.T, r *rig, badge, code string, active bool) *model.Collaborator {
	t.Helper()
	c := &model.Collaborator{
		ID:           uuid.New(),
		BadgeNumber:  badge,
		FullName:     "Colaborador " + badge,
		DirectLeader: "Líder Direto",
		BalanceHours: decimal.Zero,
		IsActive:     active,
	}
	if code != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
		require.NoError(t, err)
		s := string(hash)
		c.AccessCodeHash = &s
	}
	require.NoError(t, r.collabs.Create(nil, c))
	return c
}

func seedAdmin(t *testing.T, r *rig, username, password string, caps model.Administrator) *model.Administrator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	a := &model.Administrator{
		ID:                    uuid.New(),
		Username:              username,
		FullName:              "Admin " + username,
		PasswordHash:          string(hash),
		CanCreateCollaborator: caps.CanCreateCollaborator,
		CanCreateAdmin:        caps.CanCreateAdmin,
		CanEnterHours:         caps.CanEnterHours,
		CanChangeAccessCode:   caps.CanChangeAccessCode,
		IsActive:              true,
	}
	require.NoError(t, r.admins.Create(nil, a))
	return a
}

// adminCaps packs the four capability flags for seedAdmin.
func adminCaps(createCollab, createAdmin, enterHours, changeCode bool) model.Administrator {
	return model.Administrator{
		CanCreateCollaborator: createCollab,
		CanCreateAdmin:        createAdmin,
		CanEnterHours:         enterHours,
		CanChangeAccessCode:   changeCode,
	}
}

// ── Request helpers ───────────────────────────────────────────────────────────

func (r *rig) do(t *testing.T, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: r.cfg.SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the session token set on a response, or "" when the
// response did not touch the cookie.
func (r *rig) sessionCookie(w *httptest.ResponseRecorder) string {
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == r.cfg.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
