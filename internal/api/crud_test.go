package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/testutil"
)

func TestProtectedRoutesRequireSession(t *testing.T) {
	testutil.SetupDB(t)
	a := newAPI(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/portfolio/experience"},
		{http.MethodPost, "/api/portfolio/education"},
		{http.MethodPatch, "/api/portfolio/links"},
		{http.MethodDelete, "/api/portfolio/socials?id=x"},
		{http.MethodGet, "/api/portfolio/projects"},
		{http.MethodGet, "/api/portfolio/skill"},
		{http.MethodGet, "/api/portfolio/profile"},
		{http.MethodPatch, "/api/portfolio/profile"},
		{http.MethodGet, "/api/portfolio/profile/completeness"},
		{http.MethodPost, "/api/portfolio/profile/picture/presign"},
	} {
		rec := a.do(route.method, route.path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestExperienceCurrentRoleDropsEndDate(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "ada")
	cookie := testutil.SessionCookie(t, user)
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/portfolio/experience", map[string]any{
		"company":       "Engines Ltd",
		"position":      "Analyst",
		"startDate":     "2022-03-01",
		"endDate":       "2024-01-01",
		"isCurrentRole": true,
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Experience
	decode(t, rec, &created)
	assert.Nil(t, created.EndDate)
	assert.Equal(t, user.ID, created.UserID)

	var stored models.Experience
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Nil(t, stored.EndDate)

	rec = a.do(http.MethodGet, "/api/portfolio/ada", nil, nil)
	var p models.Portfolio
	decode(t, rec, &p)
	require.Len(t, p.Experiences, 1)
	assert.Nil(t, p.Experiences[0].EndDate)
}

func TestExperienceValidation(t *testing.T) {
	db := testutil.SetupDB(t)
	cookie := testutil.SessionCookie(t, testutil.CreateUser(t, db, "ada"))
	a := newAPI(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing company", map[string]any{"position": "Dev", "startDate": "2020-01-01"}},
		{"bad start date", map[string]any{"company": "X", "position": "Dev", "startDate": "yesterday"}},
		{"end before start", map[string]any{"company": "X", "position": "Dev", "startDate": "2020-01-01", "endDate": "2019-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, "/api/portfolio/experience", tt.body, cookie)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	rec := a.do(http.MethodPost, "/api/portfolio/experience", strings.NewReader("{not json"), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExperiencePartialUpdate(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "ada")
	cookie := testutil.SessionCookie(t, user)
	a := newAPI(t)

	exp := models.Experience{
		UserID: user.ID, Company: "Engines Ltd", Position: "Analyst", Description: "keep me",
		StartDate: testutil.Date(2020, 1, 1), EndDate: ptr(testutil.Date(2021, 1, 1)),
	}
	require.NoError(t, db.Create(&exp).Error)

	// Body id under the entity-specific key.
	rec := a.do(http.MethodPatch, "/api/portfolio/experience", map[string]any{
		"experienceId":  exp.ID,
		"position":      "Lead Analyst",
		"isCurrentRole": true,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Experience
	decode(t, rec, &updated)
	assert.Equal(t, "Lead Analyst", updated.Position)
	assert.Equal(t, "keep me", updated.Description)
	assert.True(t, updated.IsCurrentRole)
	assert.Nil(t, updated.EndDate)

	// Ending the role takes a month-precision end date.
	rec = a.do(http.MethodPatch, "/api/portfolio/experience?id="+exp.ID.String(), map[string]any{
		"isCurrentRole": false,
		"endDate":       "2022-06",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &updated)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, testutil.Date(2022, 6, 1), updated.EndDate.UTC())

	rec = a.do(http.MethodPatch, "/api/portfolio/experience", map[string]any{"position": "x"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRemovesExactlyOneRecord(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "ada")
	cookie := testutil.SessionCookie(t, user)
	a := newAPI(t)

	var ids []string
	for _, label := range []string{"Blog", "Talks", "Notes"} {
		rec := a.do(http.MethodPost, "/api/portfolio/links", map[string]string{"label": label, "url": label + ".example.com"}, cookie)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var l models.Link
		decode(t, rec, &l)
		ids = append(ids, l.ID.String())
	}

	rec := a.do(http.MethodDelete, "/api/portfolio/links?linkId="+ids[1], nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/portfolio/links", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var remaining []models.Link
	decode(t, rec, &remaining)
	require.Len(t, remaining, 2)
	assert.Equal(t, ids[0], remaining[0].ID.String())
	assert.Equal(t, ids[2], remaining[1].ID.String())

	rec = a.do(http.MethodDelete, "/api/portfolio/links?id="+ids[1], nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, "/api/portfolio/links", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForeignRecordsAreNotFound(t *testing.T) {
	db := testutil.SetupDB(t)
	owner := testutil.CreateUser(t, db, "ada")
	intruder := testutil.SessionCookie(t, testutil.CreateUser(t, db, "mallory"))
	a := newAPI(t)

	skill := models.Skill{UserID: owner.ID, Name: "Go", Level: models.SkillExpert}
	require.NoError(t, db.Create(&skill).Error)

	rec := a.do(http.MethodPatch, "/api/portfolio/skill?id="+skill.ID.String(), map[string]string{"name": "Hacked"}, intruder)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodDelete, "/api/portfolio/skill?id="+skill.ID.String(), nil, intruder)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, "/api/portfolio/skill", nil, intruder)
	var listed []models.Skill
	decode(t, rec, &listed)
	assert.Empty(t, listed)

	var stored models.Skill
	require.NoError(t, db.First(&stored, "id = ?", skill.ID).Error)
	assert.Equal(t, "Go", stored.Name)
}

func TestForeignUserIDIsForbidden(t *testing.T) {
	db := testutil.SetupDB(t)
	owner := testutil.CreateUser(t, db, "ada")
	cookie := testutil.SessionCookie(t, testutil.CreateUser(t, db, "mallory"))
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/portfolio/projects", map[string]string{"title": "Evil", "userId": owner.ID.String()}, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodGet, "/api/portfolio/projects?userId="+owner.ID.String(), nil, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodPatch, "/api/portfolio/profile", map[string]string{"tagline": "pwned", "userId": owner.ID.String()}, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestURLNormalization(t *testing.T) {
	db := testutil.SetupDB(t)
	cookie := testutil.SessionCookie(t, testutil.CreateUser(t, db, "ada"))
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/portfolio/socials", map[string]string{"platform": "github", "url": "github.com/ada"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var s models.Social
	decode(t, rec, &s)
	assert.Equal(t, "https://github.com/ada", s.URL)

	// The older link form sends its label as "text".
	rec = a.do(http.MethodPost, "/api/portfolio/links", map[string]string{"text": "Home", "url": "http://ada.dev"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var l models.Link
	decode(t, rec, &l)
	assert.Equal(t, "Home", l.Label)
	assert.Equal(t, "http://ada.dev", l.URL)

	rec = a.do(http.MethodPost, "/api/portfolio/projects", map[string]any{
		"title":        "Engine",
		"githubLink":   "github.com/ada/engine",
		"technologies": "Go, Postgres",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p models.Project
	decode(t, rec, &p)
	assert.Equal(t, "https://github.com/ada/engine", p.GithubLink)
	assert.Equal(t, models.StringList{"Go", "Postgres"}, p.Technologies)
}

func TestSkills(t *testing.T) {
	db := testutil.SetupDB(t)
	cookie := testutil.SessionCookie(t, testutil.CreateUser(t, db, "ada"))
	other := testutil.SessionCookie(t, testutil.CreateUser(t, db, "grace"))
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/portfolio/skill", map[string]string{"name": "Go", "level": "advanced"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var s models.Skill
	decode(t, rec, &s)
	assert.Equal(t, models.SkillAdvanced, s.Level)

	rec = a.do(http.MethodPost, "/api/portfolio/skill", map[string]string{"name": "go"}, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Skills are per user.
	rec = a.do(http.MethodPost, "/api/portfolio/skill", map[string]string{"name": "Go"}, other)
	require.Equal(t, http.StatusCreated, rec.Code)
	var defaulted models.Skill
	decode(t, rec, &defaulted)
	assert.Equal(t, models.SkillBeginner, defaulted.Level)

	rec = a.do(http.MethodPost, "/api/portfolio/skill", map[string]string{"name": "Rust", "level": "guru"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Renaming to itself is not a conflict.
	rec = a.do(http.MethodPatch, "/api/portfolio/skill", map[string]string{"id": s.ID.String(), "name": "GO", "level": "EXPERT"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &s)
	assert.Equal(t, "GO", s.Name)
	assert.Equal(t, models.SkillExpert, s.Level)
}

func TestEducationCrud(t *testing.T) {
	db := testutil.SetupDB(t)
	cookie := testutil.SessionCookie(t, testutil.CreateUser(t, db, "ada"))
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/portfolio/education", map[string]any{
		"institution": "Uni",
		"degree":      "MSc",
		"startDate":   "2021-09-01T00:00:00Z",
		"endDate":     "2023-06-30",
		"isOngoing":   true,
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var e models.Education
	decode(t, rec, &e)
	assert.Nil(t, e.EndDate)

	rec = a.do(http.MethodPatch, "/api/portfolio/education", map[string]any{"educationId": e.ID, "fieldOfStudy": "Mathematics"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &e)
	assert.Equal(t, "Mathematics", e.FieldOfStudy)
	assert.Equal(t, "MSc", e.Degree)

	rec = a.do(http.MethodDelete, "/api/portfolio/education?educationId="+e.ID.String(), nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}
