package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"ngoconnect-web/backend"
	"ngoconnect-web/backend/mocks"
	"ngoconnect-web/config"
	"ngoconnect-web/controllers"
	"ngoconnect-web/forms"
	"ngoconnect-web/identity"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/models"
	"ngoconnect-web/routes"
	"ngoconnect-web/session"
	"ngoconnect-web/views"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	cookieName = "ngo_sid"
	backendURL = "http://api.test"
)

type fakeGeocoder struct {
	location string
	err      error
}

func (f fakeGeocoder) Reverse(context.Context, float64, float64) (string, error) {
	return f.location, f.err
}

type testEnv struct {
	api     *mocks.MockAPI
	store   *session.MemoryStore
	manager *session.Manager
	router  *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	api := mocks.NewMockAPI(gomock.NewController(t))
	store := session.NewMemoryStore()
	manager := session.NewManager(store, time.Hour)

	cats, err := config.LoadCategories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	forms.RegisterCategories(cats.Valid)

	tmpl, err := views.Load(backendURL)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	resolver := identity.NewResolver(api)
	ctl := &controllers.Controller{
		API:        api,
		Sessions:   manager,
		Accounts:   resolver,
		Categories: cats,
		Geocoder:   fakeGeocoder{location: "Aligarh, Uttar Pradesh, India"},
		MaxUpload:  1 << 20,
	}

	router := routes.NewRouter(routes.Options{
		Controller: ctl,
		Sessions:   manager,
		Resolver:   resolver,
		Session: middlewares.SessionConfig{
			CookieName:  cookieName,
			CookieTTL:   time.Hour,
			IdentityTTL: 5 * time.Minute,
		},
		Counter:     middlewares.NewMemoryCounter(),
		ReportLimit: 10,
		Templates:   tmpl,
	})

	return &testEnv{api: api, store: store, manager: manager, router: router}
}

// session stores a logged in session, resolved to id when id is authenticated.
func (e *testEnv) session(t *testing.T, token string, id models.Identity) string {
	t.Helper()
	ctx := context.Background()

	s := e.manager.New()
	hint := id.Role()
	if hint == "" {
		hint = models.RoleNGO
	}
	if err := e.manager.Login(ctx, s, token, hint); err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Authenticated() {
		if err := e.manager.SetIdentity(ctx, s, id); err != nil {
			t.Fatalf("set identity: %v", err)
		}
	}
	return s.ID
}

func (e *testEnv) do(req *http.Request, sid string) *httptest.ResponseRecorder {
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path, sid string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil), sid)
}

func (e *testEnv) postForm(path string, values url.Values, sid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req, sid)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

func TestLoginRequiredFieldsBlockNetworkCall(t *testing.T) {
	e := newTestEnv(t)

	w := e.postForm("/login-ngo", url.Values{"email": {""}, "password": {""}}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "*This field is required") {
		t.Fatalf("expected field message, got %s", w.Body.String())
	}
}

func TestLoginNGOThenDashboardShowsNGOTable(t *testing.T) {
	e := newTestEnv(t)
	e.api.EXPECT().LoginNGO(gomock.Any(), backend.Credentials{Email: "ngo@example.com", Password: "secret1"}).Return("tok", nil)

	w := e.postForm("/login-ngo", url.Values{"email": {"ngo@example.com"}, "password": {"secret1"}}, "")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %d %s", w.Code, w.Header().Get("Location"))
	}
	sid := sessionCookie(t, w)

	e.api.EXPECT().CurrentNGO(gomock.Any(), "tok").Return(models.Account{ID: "n1", Role: "ngo"}, nil)
	e.api.EXPECT().Reports(gomock.Any(), "tok").Return([]models.Issue{
		{ID: "i1", Title: "Injured dog", Description: "Near the market", Location: "Aligarh", Category: "animal_welfare"},
	}, nil)

	w = e.get("/dashboard", sid)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "issues-ngo") || strings.Contains(body, "issues-user") {
		t.Fatalf("expected the NGO table, got %s", body)
	}
	if !strings.Contains(body, "Mark resolved") || !strings.Contains(body, "Login successful") {
		t.Fatalf("expected resolve action and login flash, got %s", body)
	}

	stored, err := e.store.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if stored.UserType != models.RoleNGO || stored.UserID != "n1" {
		t.Fatalf("expected userType ngo, got %+v", stored)
	}
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	e := newTestEnv(t)
	e.api.EXPECT().LoginUser(gomock.Any(), gomock.Any()).Return("", &backend.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"})

	w := e.postForm("/login-user", url.Values{"email": {"a@b.co"}, "password": {"secret1"}}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Fatalf("expected server message, got %s", w.Body.String())
	}
}

func TestUnresolvedIdentityRendersUnknownState(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.Unknown)
	e.api.EXPECT().CurrentNGO(gomock.Any(), "tok").Return(models.Account{}, errors.New("dial tcp: connection refused"))

	w := e.get("/dashboard", sid)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Checking your account") {
		t.Fatalf("expected the unknown placeholder, got %s", body)
	}
	for _, affordance := range []string{`href="/dashboard"`, "My Reports", "Create new Post", "issues-ngo"} {
		if strings.Contains(body, affordance) {
			t.Fatalf("unknown identity must not see %q", affordance)
		}
	}
}

func TestAnonymousDashboardIsUnauthorized(t *testing.T) {
	e := newTestEnv(t)

	w := e.get("/dashboard", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please log in to continue") {
		t.Fatalf("expected login prompt, got %s", w.Body.String())
	}
}

func TestLogoutClearsSession(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.User("u1"))

	w := e.postForm("/logout", url.Values{}, sid)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %s", w.Code, w.Header().Get("Location"))
	}

	if stored, err := e.store.Get(context.Background(), sid); err == nil {
		if stored.Token != "" || stored.UserType != "" || stored.UserID != "" {
			t.Fatalf("session still holds credentials: %+v", stored)
		}
	}

	w = e.get("/api/session", sid)
	if !strings.Contains(w.Body.String(), `"state":"anonymous"`) {
		t.Fatalf("expected anonymous after logout, got %s", w.Body.String())
	}
}

func TestNGOSeesNGOAffordances(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.NGO("n1"))
	e.api.EXPECT().Posts(gomock.Any()).Return([]models.Post{
		{ID: "p1", NGOID: "n1", NGOName: "Paws", Title: "Adoption camp", Content: "**Sunday**", UpdatedAt: time.Now().Add(-time.Hour)},
		{ID: "p2", NGOID: "n2", NGOName: "Other", Title: "Food drive", Content: "Bring rice"},
	}, nil)

	body := e.get("/community", sid).Body.String()
	if !strings.Contains(body, "Create new Post") || !strings.Contains(body, ">Dashboard<") {
		t.Fatalf("NGO affordances missing: %s", body)
	}
	if strings.Contains(body, "My Reports") || strings.Contains(body, `href="/report"`) {
		t.Fatal("NGO must not see My Reports or the report link")
	}
	if !strings.Contains(body, "/community/posts/p1/delete") || strings.Contains(body, "/community/posts/p2/delete") {
		t.Fatal("delete must be offered on own posts only")
	}
	if !strings.Contains(body, "<strong>Sunday</strong>") {
		t.Fatal("post content must be rendered as markdown")
	}
}

func TestUserSeesUserAffordances(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.User("u1"))
	e.api.EXPECT().Posts(gomock.Any()).Return([]models.Post{{ID: "p1", NGOID: "n1", Title: "Adoption camp"}}, nil)

	body := e.get("/community", sid).Body.String()
	if strings.Contains(body, "Create new Post") || strings.Contains(body, "/delete") {
		t.Fatal("user must not see NGO affordances")
	}
	if !strings.Contains(body, "My Reports") || !strings.Contains(body, `href="/report"`) {
		t.Fatal("user must see My Reports and the report link")
	}
}

func TestCommunityEmptyListPlaceholder(t *testing.T) {
	e := newTestEnv(t)
	e.api.EXPECT().Posts(gomock.Any()).Return([]models.Post{}, nil)

	w := e.get("/community", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No posts available") {
		t.Fatalf("expected empty placeholder, got %s", w.Body.String())
	}
}

func TestCommunityFailureIsNotEmptyPlaceholder(t *testing.T) {
	e := newTestEnv(t)
	e.api.EXPECT().Posts(gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))

	w := e.get("/community", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "No posts available") || !strings.Contains(body, "An error occurred, please try again!") {
		t.Fatalf("expected error message, got %s", body)
	}
}

func TestCommunityImagesLoadFromBackend(t *testing.T) {
	e := newTestEnv(t)
	e.api.EXPECT().Posts(gomock.Any()).Return([]models.Post{
		{ID: "p1", NGOID: "n1", Title: "Food drive", Content: "Sunday", ImagePath: "/uploads/a.png"},
	}, nil)

	body := e.get("/community", "").Body.String()
	if !strings.Contains(body, `src="http://api.test/uploads/a.png"`) {
		t.Fatalf("expected the image served by the backend, got %s", body)
	}
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func multipartReport(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "dog.png")
		if err != nil {
			t.Fatal(err)
		}
		_, _ = part.Write(image)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/report", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSubmitReportWithImage(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.User("u1"))

	e.api.EXPECT().SubmitReport(gomock.Any(), "tok", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r backend.ReportSubmission) (string, error) {
			if r.Title != "Injured dog" || r.Description != "Near the market" || r.Location != "Aligarh" || r.Category != "animal_welfare" {
				t.Errorf("unexpected report %+v", r)
			}
			if r.Image == nil || r.Image.ContentType != "image/png" || r.Image.Filename != "dog.png" {
				t.Errorf("unexpected image %+v", r.Image)
			}
			return "Report submitted", nil
		})

	req := multipartReport(t, map[string]string{
		"title":    "Injured dog",
		"desc":     "Near the market",
		"location": "Aligarh",
		"category": "animal_welfare",
	}, pngBytes)
	w := e.do(req, sid)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %d %s", w.Code, w.Header().Get("Location"))
	}

	stored, err := e.store.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(stored.Flashes) != 1 || stored.Flashes[0].Message != "Report submitted" {
		t.Fatalf("expected success flash, got %+v", stored.Flashes)
	}
}

func TestSubmitReportMissingFieldsBlocksCall(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.User("u1"))

	w := e.do(multipartReport(t, map[string]string{"title": "Injured dog"}, nil), sid)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "*This field is required") {
		t.Fatal("expected field level messages")
	}
}

func TestInvalidReportsDoNotUseDailyLimit(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.User("u1"))

	for i := 0; i < 11; i++ {
		w := e.do(multipartReport(t, map[string]string{"title": ""}, nil), sid)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("attempt %d: expected 400, got %d", i, w.Code)
		}
	}

	e.api.EXPECT().SubmitReport(gomock.Any(), "tok", gomock.Any()).Return("Report submitted", nil)
	w := e.do(multipartReport(t, map[string]string{
		"title":    "Injured dog",
		"desc":     "Near the market",
		"location": "Aligarh",
		"category": "animal_welfare",
	}, nil), sid)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected the valid report to go through, got %d", w.Code)
	}
}

func TestSubmitReportRejectsNonImage(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.User("u1"))

	req := multipartReport(t, map[string]string{
		"title":    "Injured dog",
		"desc":     "Near the market",
		"location": "Aligarh",
		"category": "animal_welfare",
	}, []byte("#!/bin/sh\necho hi\n"))
	w := e.do(req, sid)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Only image files") {
		t.Fatalf("expected image error, got %d", w.Code)
	}
}

func TestNGOCannotReport(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.NGO("n1"))

	if w := e.get("/report", sid); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRejectedTokenDuringFetchForcesLogout(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.NGO("n1"))
	e.api.EXPECT().Reports(gomock.Any(), "tok").Return(nil, &backend.APIError{Status: http.StatusUnauthorized, Message: "jwt expired"})

	w := e.get("/dashboard", sid)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login-ngo" {
		t.Fatalf("expected redirect to NGO login, got %d %s", w.Code, w.Header().Get("Location"))
	}
	stored, err := e.store.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("expected a record carrying the flash: %v", err)
	}
	if stored.HasToken() {
		t.Fatalf("token must be cleared: %+v", stored)
	}
}

func TestResolveIssueRedirectsToDashboard(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.NGO("n1"))
	e.api.EXPECT().ResolveReport(gomock.Any(), "tok", "i9").Return("Issue resolved", nil)

	w := e.postForm("/dashboard/issues/i9/resolve", url.Values{}, sid)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestDeletePostRequiresOwnership(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.NGO("n1"))
	e.api.EXPECT().Posts(gomock.Any()).Return([]models.Post{{ID: "p2", NGOID: "n2"}}, nil)

	w := e.postForm("/community/posts/p2/delete", url.Values{}, sid)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestDeleteOwnPost(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.NGO("n1"))
	e.api.EXPECT().Posts(gomock.Any()).Return([]models.Post{{ID: "p1", NGOID: "n1"}}, nil)
	e.api.EXPECT().DeletePost(gomock.Any(), "tok", "p1").Return("Post deleted", nil)

	w := e.postForm("/community/posts/p1/delete", url.Values{}, sid)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/community" {
		t.Fatalf("expected redirect, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestRegisterUserRedirectsToLogin(t *testing.T) {
	e := newTestEnv(t)
	e.api.EXPECT().RegisterUser(gomock.Any(), backend.UserRegistration{Name: "Asha", Email: "asha@example.com", Password: "secret1"}).Return("User registered", nil)

	w := e.postForm("/register-user", url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "password": {"secret1"}}, "")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login-user" {
		t.Fatalf("expected redirect to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestProfileShowsAccount(t *testing.T) {
	e := newTestEnv(t)
	sid := e.session(t, "tok", models.User("u1"))
	e.api.EXPECT().CurrentUser(gomock.Any(), "tok").Return(models.Account{ID: "u1", Name: "Asha", Email: "asha@example.com"}, nil)

	body := e.get("/profile", sid).Body.String()
	if !strings.Contains(body, "Asha") || !strings.Contains(body, "asha@example.com") {
		t.Fatalf("expected account details, got %s", body)
	}
}

func TestCategoryPageListsNGOs(t *testing.T) {
	e := newTestEnv(t)
	cats, _ := config.LoadCategories()
	health, ok := cats.ByValue("health")
	if !ok {
		t.Fatal("health category missing")
	}
	e.api.EXPECT().NGOsByCategory(gomock.Any(), "health").Return([]models.Organisation{{Name: "Care Trust", Location: "Pune"}}, nil)

	w := e.get("/category/"+health.Slug, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Care Trust") {
		t.Fatalf("expected NGO listing, got %d", w.Code)
	}
}

func TestUnknownCategoryIs404(t *testing.T) {
	e := newTestEnv(t)
	if w := e.get("/category/no-such-thing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReverseGeocode(t *testing.T) {
	e := newTestEnv(t)

	w := e.get("/location/reverse?lat=27.89&lon=78.08", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Aligarh") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if w := e.get("/location/reverse?lat=x", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
