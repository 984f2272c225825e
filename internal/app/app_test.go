package app_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/testutil"
	"github.com/fadilmartias/career-coach/internal/testutil/apptest"
	"github.com/fadilmartias/career-coach/internal/util"
)

type userBody struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func signup(t *testing.T, b *apptest.Browser, username string) userBody {
	t.Helper()
	var u userBody
	status := b.JSON(http.MethodPost, "/api/auth/signup", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	}, &u)
	if status != http.StatusOK {
		t.Fatalf("signup %s: got=%d want=200", username, status)
	}
	return u
}

func TestHealth(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)

	var body map[string]any
	if status := b.JSON(http.MethodGet, "/health", nil, &body); status != http.StatusOK {
		t.Fatalf("health: got=%d want=200", status)
	}
	if body["status"] != "ok" {
		t.Fatalf("status: got=%v want=ok", body["status"])
	}
	if _, ok := body["timestamp"].(string); !ok {
		t.Fatalf("timestamp missing: %v", body)
	}
	if _, ok := body["uptime"].(float64); !ok {
		t.Fatalf("uptime missing: %v", body)
	}

	for _, path := range []string{"/livez", "/readyz"} {
		if status, _ := b.Do(http.MethodGet, path, nil); status != http.StatusOK {
			t.Fatalf("%s: got=%d want=200", path, status)
		}
	}
}

func TestSignupScenario(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)

	status, raw := b.Do(http.MethodPost, "/api/auth/signup", map[string]any{
		"username":  "jdoe",
		"email":     "j@x.com",
		"password":  "secret1",
		"firstName": "J",
		"lastName":  "D",
	})
	if status != http.StatusOK {
		t.Fatalf("signup: got=%d want=200 body=%s", status, raw)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["password"]; ok {
		t.Fatalf("password leaked: %s", raw)
	}
	if strings.Contains(string(raw), "secret1") {
		t.Fatalf("plaintext password in body: %s", raw)
	}
	if b.Cookie(apptest.SessionCookie) == "" {
		t.Fatal("expected a session cookie")
	}

	var skill struct {
		UserID    string `json:"userId"`
		Name      string `json:"name"`
		Validated bool   `json:"validated"`
	}
	status = b.JSON(http.MethodPost, "/api/skills", map[string]any{
		"name": "SQL", "category": "Technical", "level": 6,
	}, &skill)
	if status != http.StatusOK {
		t.Fatalf("create skill: got=%d want=200", status)
	}
	if skill.UserID != body["id"] {
		t.Fatalf("skill owner: got=%s want=%v", skill.UserID, body["id"])
	}
	if skill.Validated {
		t.Fatal("new skill should not be validated")
	}

	var me userBody
	if status := b.JSON(http.MethodGet, "/api/auth/me", nil, &me); status != http.StatusOK || me.Username != "jdoe" {
		t.Fatalf("me: got=%d %+v", status, me)
	}
}

func TestSignupValidationAndDuplicates(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)

	var env util.OrderedErrorResponse
	status := b.JSON(http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "jd", "email": "not-an-email", "password": "123",
	}, &env)
	if status != http.StatusBadRequest {
		t.Fatalf("invalid signup: got=%d want=400", status)
	}
	details, _ := env.Details.(map[string]any)
	for _, field := range []string{"username", "email", "password"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("missing detail for %s: %v", field, env.Details)
		}
	}

	signup(t, b, "jdoe")
	other := apptest.NewBrowser(t, a)
	status = other.JSON(http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "someone", "email": "JDOE@example.com", "password": "secret1",
	}, &env)
	if status != http.StatusBadRequest || env.Message != "User with this email already exists" {
		t.Fatalf("duplicate email: got=%d %q", status, env.Message)
	}
	status = other.JSON(http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "jdoe", "email": "other@example.com", "password": "secret1",
	}, &env)
	if status != http.StatusBadRequest || env.Message != "Username already taken" {
		t.Fatalf("duplicate username: got=%d %q", status, env.Message)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	signup(t, apptest.NewBrowser(t, a), "jdoe")

	b := apptest.NewBrowser(t, a)
	wrongStatus, wrongBody := b.Do(http.MethodPost, "/api/auth/login", map[string]any{
		"email": "jdoe@example.com", "password": "wrong-password",
	})
	unknownStatus, unknownBody := b.Do(http.MethodPost, "/api/auth/login", map[string]any{
		"email": "nobody@example.com", "password": "secret1",
	})
	if wrongStatus != http.StatusUnauthorized || unknownStatus != http.StatusUnauthorized {
		t.Fatalf("got=%d,%d want=401,401", wrongStatus, unknownStatus)
	}
	var wrong, unknown util.OrderedErrorResponse
	_ = json.Unmarshal(wrongBody, &wrong)
	_ = json.Unmarshal(unknownBody, &unknown)
	if wrong.Message != unknown.Message || wrong.Message != "Invalid credentials" {
		t.Fatalf("messages differ: %q vs %q", wrong.Message, unknown.Message)
	}
	if b.Cookie(apptest.SessionCookie) != "" {
		t.Fatal("failed login must not establish a session")
	}

	var u userBody
	if status := b.JSON(http.MethodPost, "/api/auth/login", map[string]any{
		"email": "JDoe@Example.com", "password": "secret1",
	}, &u); status != http.StatusOK || u.Username != "jdoe" {
		t.Fatalf("login: got=%d %+v", status, u)
	}
}

func TestLoginRegeneratesSessionID(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	signup(t, b, "jdoe")
	first := b.Cookie(apptest.SessionCookie)

	if status, _ := b.Do(http.MethodPost, "/api/auth/login", map[string]any{
		"email": "jdoe@example.com", "password": "secret1",
	}); status != http.StatusOK {
		t.Fatalf("login: got=%d", status)
	}
	if second := b.Cookie(apptest.SessionCookie); second == "" || second == first {
		t.Fatalf("session id not rotated: %q -> %q", first, second)
	}
}

func TestLogout(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	signup(t, b, "jdoe")
	stolen := b.Cookie(apptest.SessionCookie)

	var env util.OrderedSuccessResponse
	if status := b.JSON(http.MethodPost, "/api/auth/logout", nil, &env); status != http.StatusOK || !env.Success {
		t.Fatalf("logout: got=%d %+v", status, env)
	}
	if status, _ := b.Do(http.MethodGet, "/api/auth/me", nil); status != http.StatusUnauthorized {
		t.Fatalf("me after logout: got=%d want=401", status)
	}

	// the old session id must be dead server-side too
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: apptest.SessionCookie, Value: stolen})
	if status, _ := apptest.NewBrowser(t, a).Send(req); status != http.StatusUnauthorized {
		t.Fatalf("replayed cookie: got=%d want=401", status)
	}
}

func TestSessionForDeletedUserIsUnauthenticated(t *testing.T) {
	a, db := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	u := signup(t, b, "jdoe")

	if err := db.Exec("DELETE FROM users WHERE id = ?", u.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if status, _ := b.Do(http.MethodGet, "/api/auth/me", nil); status != http.StatusUnauthorized {
		t.Fatalf("me: got=%d want=401", status)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodPost, "/api/skills"},
		{http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000001/goals"},
		{http.MethodGet, "/api/resumes/00000000-0000-0000-0000-000000000001"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var env util.OrderedErrorResponse
			if status := b.JSON(tc.method, tc.path, nil, &env); status != http.StatusUnauthorized {
				t.Fatalf("got=%d want=401", status)
			}
			if env.Message != "Authentication required" {
				t.Fatalf("message: got=%q", env.Message)
			}
		})
	}
}

func TestCrossOwnerAccessIsForbidden(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	alice := apptest.NewBrowser(t, a)
	bob := apptest.NewBrowser(t, a)
	aliceUser := signup(t, alice, "alice")
	bobUser := signup(t, bob, "bob")

	var goal struct{ ID string }
	if status := alice.JSON(http.MethodPost, "/api/goals", map[string]any{"title": "Lead a team"}, &goal); status != http.StatusOK {
		t.Fatalf("create goal: got=%d", status)
	}
	var resume struct{ ID string }
	if status := alice.JSON(http.MethodPost, "/api/resumes", map[string]any{
		"title": "CV", "content": "Ten years of Go",
	}, &resume); status != http.StatusOK {
		t.Fatalf("create resume: got=%d", status)
	}

	collections := []string{"assessments", "resumes", "interviews", "career-paths", "skills", "goals", "recommendations"}
	for _, col := range collections {
		if status, _ := bob.Do(http.MethodGet, "/api/users/"+aliceUser.ID+"/"+col, nil); status != http.StatusForbidden {
			t.Fatalf("list %s: got=%d want=403", col, status)
		}
	}
	// an owner id that names nobody is still someone else's
	if status, _ := bob.Do(http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000009/goals", nil); status != http.StatusForbidden {
		t.Fatalf("unknown owner: got=%d want=403", status)
	}
	if status, _ := bob.Do(http.MethodGet, "/api/users/"+aliceUser.ID, nil); status != http.StatusForbidden {
		t.Fatalf("get user: got=%d want=403", status)
	}
	if status, _ := bob.Do(http.MethodPatch, "/api/users/"+aliceUser.ID, map[string]any{"firstName": "Mallory"}); status != http.StatusForbidden {
		t.Fatalf("patch user: got=%d want=403", status)
	}
	if status, _ := bob.Do(http.MethodPatch, "/api/goals/"+goal.ID, map[string]any{"completed": true}); status != http.StatusForbidden {
		t.Fatalf("patch goal: got=%d want=403", status)
	}
	if status, _ := bob.Do(http.MethodGet, "/api/resumes/"+resume.ID, nil); status != http.StatusForbidden {
		t.Fatalf("get resume: got=%d want=403", status)
	}
	if status, _ := bob.Do(http.MethodDelete, "/api/resumes/"+resume.ID, nil); status != http.StatusForbidden {
		t.Fatalf("delete resume: got=%d want=403", status)
	}
	if status, _ := bob.Do(http.MethodPost, "/api/goals", map[string]any{"userId": aliceUser.ID, "title": "x"}); status != http.StatusForbidden {
		t.Fatalf("create for other owner: got=%d want=403", status)
	}

	var own []map[string]any
	if status := bob.JSON(http.MethodGet, "/api/users/"+bobUser.ID+"/goals", nil, &own); status != http.StatusOK || own == nil || len(own) != 0 {
		t.Fatalf("own goals: got=%d %v", status, own)
	}
}

func TestMissingRecordsAreNotFound(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	signup(t, b, "jdoe")

	for _, path := range []string{
		"/api/assessments/00000000-0000-0000-0000-000000000001",
		"/api/resumes/not-a-uuid",
		"/api/interviews/00000000-0000-0000-0000-000000000001",
		"/api/career-paths/00000000-0000-0000-0000-000000000001",
	} {
		if status, _ := b.Do(http.MethodGet, path, nil); status != http.StatusNotFound {
			t.Fatalf("%s: got=%d want=404", path, status)
		}
	}
	if status, _ := b.Do(http.MethodDelete, "/api/skills/00000000-0000-0000-0000-000000000001", nil); status != http.StatusNotFound {
		t.Fatalf("delete missing skill: got=%d want=404", status)
	}
}

func TestGoalCompletionScenario(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	signup(t, b, "jdoe")

	var created model.Goal
	if status := b.JSON(http.MethodPost, "/api/goals", map[string]any{"title": "Ship it", "progress": 40}, &created); status != http.StatusOK {
		t.Fatalf("create goal: got=%d", status)
	}
	time.Sleep(10 * time.Millisecond)

	var updated model.Goal
	if status := b.JSON(http.MethodPatch, "/api/goals/"+created.ID.String(), map[string]any{"completed": true}, &updated); status != http.StatusOK {
		t.Fatalf("patch goal: got=%d", status)
	}
	if !updated.Completed {
		t.Fatal("expected completed=true")
	}
	if updated.Progress != 40 || updated.Title != "Ship it" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt did not advance: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	if status, _ := b.Do(http.MethodPatch, "/api/goals/"+created.ID.String(), map[string]any{"progress": 150}); status != http.StatusBadRequest {
		t.Fatalf("progress out of range: got=%d want=400", status)
	}

	status, raw := b.Do(http.MethodDelete, "/api/goals/"+created.ID.String(), nil)
	if status != http.StatusNoContent || len(raw) != 0 {
		t.Fatalf("delete goal: got=%d body=%q", status, raw)
	}
}

func TestSkillListIsStable(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	u := signup(t, b, "jdoe")

	for _, name := range []string{"Go", "SQL", "Kubernetes"} {
		if status, _ := b.Do(http.MethodPost, "/api/skills", map[string]any{"name": name, "level": 5}); status != http.StatusOK {
			t.Fatalf("create %s: got=%d", name, status)
		}
		time.Sleep(2 * time.Millisecond)
	}

	_, first := b.Do(http.MethodGet, "/api/users/"+u.ID+"/skills", nil)
	_, second := b.Do(http.MethodGet, "/api/users/"+u.ID+"/skills", nil)
	if !bytes.Equal(first, second) {
		t.Fatalf("lists differ:\n%s\n%s", first, second)
	}
	var skills []model.Skill
	if err := json.Unmarshal(first, &skills); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(skills) != 3 || skills[0].Name != "Kubernetes" {
		t.Fatalf("want most recent first, got %+v", skills)
	}
}

func TestAssessmentSurvivesAdvisorFailure(t *testing.T) {
	advisor := testutil.NewFakeAdvisor()
	advisor.SetErr(errors.New("provider down"))
	a, _ := apptest.NewApp(t, advisor)
	b := apptest.NewBrowser(t, a)
	signup(t, b, "jdoe")

	status, raw := b.Do(http.MethodPost, "/api/assessments", map[string]any{
		"type": "career",
		"data": map[string]any{"skills": []string{"Go"}, "interests": []string{"infra"}},
	})
	if status != http.StatusOK {
		t.Fatalf("create: got=%d want=200 body=%s", status, raw)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["results"] != nil || body["score"] != nil {
		t.Fatalf("AI fields should be null: %s", raw)
	}
	if body["enrichmentStatus"] != model.EnrichmentFailed {
		t.Fatalf("enrichmentStatus: got=%v", body["enrichmentStatus"])
	}

	// manual re-analysis once the provider recovers
	advisor.SetErr(nil)
	var analyzed model.Assessment
	if status := b.JSON(http.MethodPost, "/api/assessments/"+body["id"].(string)+"/analyze", nil, &analyzed); status != http.StatusOK {
		t.Fatalf("analyze: got=%d", status)
	}
	if analyzed.Score == nil || *analyzed.Score != 79 || analyzed.EnrichmentStatus != model.EnrichmentCompleted {
		t.Fatalf("analyze result: %+v", analyzed)
	}
}

func TestResumeContentChangeReanalyzes(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	signup(t, b, "jdoe")

	var created model.Resume
	if status := b.JSON(http.MethodPost, "/api/resumes", map[string]any{
		"title": "CV", "content": "short",
	}, &created); status != http.StatusOK {
		t.Fatalf("create: got=%d", status)
	}
	if created.Score == nil || created.EnrichmentStatus != model.EnrichmentCompleted {
		t.Fatalf("expected analysed resume: %+v", created)
	}
	time.Sleep(10 * time.Millisecond)

	var updated model.Resume
	if status := b.JSON(http.MethodPatch, "/api/resumes/"+created.ID.String(), map[string]any{
		"content": "a considerably longer resume body with more detail",
	}, &updated); status != http.StatusOK {
		t.Fatalf("patch: got=%d", status)
	}
	if updated.Score == nil || *updated.Score == *created.Score {
		t.Fatalf("score not re-derived: %v -> %v", created.Score, updated.Score)
	}
	if bytes.Equal(updated.Suggestions, created.Suggestions) {
		t.Fatal("suggestions not re-derived")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("updatedAt did not advance")
	}
}

func TestResumeImportAndDelete(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	u := signup(t, b, "jdoe")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "jane-doe.txt")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write([]byte("Jane Doe\nSenior Go engineer"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	status, raw := b.Send(req)
	if status != http.StatusOK {
		t.Fatalf("import: got=%d body=%s", status, raw)
	}
	var imported model.Resume
	if err := json.Unmarshal(raw, &imported); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if imported.Title != "jane-doe" || !strings.Contains(imported.Content, "Senior Go engineer") {
		t.Fatalf("imported: %+v", imported)
	}

	buf.Reset()
	w = multipart.NewWriter(&buf)
	part, _ = w.CreateFormFile("file", "photo.png")
	part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	w.Close()
	req = httptest.NewRequest(http.MethodPost, "/api/resumes/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if status, _ := b.Send(req); status != http.StatusBadRequest {
		t.Fatalf("unsupported file: got=%d want=400", status)
	}

	if status, _ := b.Do(http.MethodDelete, "/api/resumes/"+imported.ID.String(), nil); status != http.StatusNoContent {
		t.Fatalf("delete: got=%d want=204", status)
	}
	var list []model.Resume
	if status := b.JSON(http.MethodGet, "/api/users/"+u.ID+"/resumes", nil, &list); status != http.StatusOK || len(list) != 0 {
		t.Fatalf("list after delete: got=%d %v", status, list)
	}
}

func TestInterviewLifecycle(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	signup(t, b, "jdoe")

	var interview model.Interview
	if status := b.JSON(http.MethodPost, "/api/interviews", map[string]any{
		"jobTitle": "Backend Engineer", "company": "Acme",
	}, &interview); status != http.StatusOK {
		t.Fatalf("create: got=%d", status)
	}
	var questions []map[string]any
	if err := json.Unmarshal(interview.Questions, &questions); err != nil || len(questions) != 2 {
		t.Fatalf("questions: %s (%v)", interview.Questions, err)
	}

	var evaluated model.Interview
	if status := b.JSON(http.MethodPost, "/api/interviews/"+interview.ID.String()+"/evaluate", map[string]any{
		"responses": []string{"I led the migration", "I would profile first"},
	}, &evaluated); status != http.StatusOK {
		t.Fatalf("evaluate: got=%d", status)
	}
	if evaluated.Score == nil || *evaluated.Score != 71 || evaluated.CompletedAt == nil {
		t.Fatalf("evaluated: %+v", evaluated)
	}
}

func TestSkillGapAnalysisSurfacesAdvisorFailure(t *testing.T) {
	advisor := testutil.NewFakeAdvisor()
	a, _ := apptest.NewApp(t, advisor)
	b := apptest.NewBrowser(t, a)
	u := signup(t, b, "jdoe")
	b.Do(http.MethodPost, "/api/skills", map[string]any{"name": "Go", "level": 7})

	var result map[string]any
	path := "/api/users/" + u.ID + "/skills/gap-analysis"
	if status := b.JSON(http.MethodPost, path, map[string]any{"targetRole": "Staff Engineer"}, &result); status != http.StatusOK {
		t.Fatalf("gap analysis: got=%d", status)
	}

	advisor.SetErr(errors.New("quota"))
	if status, _ := b.Do(http.MethodPost, path, map[string]any{"targetRole": "Staff Engineer"}); status != http.StatusBadGateway {
		t.Fatalf("gap analysis failure: got=%d want=502", status)
	}
	if status, _ := b.Do(http.MethodPost, path, map[string]any{}); status != http.StatusBadRequest {
		t.Fatalf("missing target role: got=%d want=400", status)
	}
}

func TestCreateUserKeepsCallerSession(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	b := apptest.NewBrowser(t, a)
	signup(t, b, "admin")
	before := b.Cookie(apptest.SessionCookie)

	var created userBody
	if status := b.JSON(http.MethodPost, "/api/users", map[string]any{
		"username": "newbie", "email": "newbie@example.com", "password": "secret1",
	}, &created); status != http.StatusOK || created.Username != "newbie" {
		t.Fatalf("create user: got=%d %+v", status, created)
	}
	if b.Cookie(apptest.SessionCookie) != before {
		t.Fatal("session changed")
	}
	var me userBody
	b.JSON(http.MethodGet, "/api/auth/me", nil, &me)
	if me.Username != "admin" {
		t.Fatalf("me: got=%s want=admin", me.Username)
	}
}

func TestUnknownAPIRouteIsJSON404(t *testing.T) {
	a, _ := apptest.NewApp(t, testutil.NewFakeAdvisor())
	var env util.OrderedErrorResponse
	if status := apptest.NewBrowser(t, a).JSON(http.MethodGet, "/api/nope", nil, &env); status != http.StatusNotFound || env.Success {
		t.Fatalf("got=%d %+v", status, env)
	}
}
