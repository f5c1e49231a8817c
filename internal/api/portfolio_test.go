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

func TestGetPortfolioUnknownUser(t *testing.T) {
	testutil.SetupDB(t)

	rec := newAPI(t).do(http.MethodGet, "/api/portfolio/ghost-user", nil, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "User not found", env.Message)
	assert.Empty(t, env.Data)
}

func TestGetPortfolioDefaultsAndSanitizes(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "ada")

	rec := newAPI(t).do(http.MethodGet, "/api/portfolio/ADA", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := rec.Body.String()
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, user.Password)

	var raw map[string]any
	decode(t, rec, &raw)
	for _, key := range []string{"socials", "links", "experiences", "education", "projects", "skills"} {
		assert.Equal(t, []any{}, raw[key], key)
	}
	profile, ok := raw["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, profile["hobbies"])
	assert.Equal(t, []any{}, profile["languages"])
}

func TestGetPortfolioOrdersTimelineNewestFirst(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "ada")

	for _, e := range []models.Experience{
		{UserID: user.ID, Company: "Middle", Position: "Dev", StartDate: testutil.Date(2019, 1, 1), EndDate: ptr(testutil.Date(2020, 1, 1))},
		{UserID: user.ID, Company: "Newest", Position: "Lead", StartDate: testutil.Date(2023, 5, 1), IsCurrentRole: true},
		{UserID: user.ID, Company: "Oldest", Position: "Intern", StartDate: testutil.Date(2015, 6, 1), EndDate: ptr(testutil.Date(2016, 1, 1))},
	} {
		require.NoError(t, db.Create(&e).Error)
	}
	for _, e := range []models.Education{
		{UserID: user.ID, Institution: "School", Degree: "BSc", StartDate: testutil.Date(2010, 9, 1)},
		{UserID: user.ID, Institution: "Uni", Degree: "MSc", StartDate: testutil.Date(2014, 9, 1), IsOngoing: true},
	} {
		require.NoError(t, db.Create(&e).Error)
	}

	rec := newAPI(t).do(http.MethodGet, "/api/portfolio/ada", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Portfolio
	decode(t, rec, &p)

	var companies []string
	for _, e := range p.Experiences {
		companies = append(companies, e.Company)
	}
	assert.Equal(t, []string{"Newest", "Middle", "Oldest"}, companies)
	assert.Nil(t, p.Experiences[0].EndDate)

	require.Len(t, p.Education, 2)
	assert.Equal(t, "Uni", p.Education[0].Institution)
}

func TestListUsersHasNoCredentials(t *testing.T) {
	db := testutil.SetupDB(t)
	ada := testutil.CreateUser(t, db, "ada")
	testutil.CreateUser(t, db, "grace")
	require.NoError(t, db.Create(&models.Skill{UserID: ada.ID, Name: "Go", Level: models.SkillExpert}).Error)

	rec := newAPI(t).do(http.MethodGet, "/api/portfolio/users", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), ada.Password)

	var cards []models.UserCard
	decode(t, rec, &cards)
	require.Len(t, cards, 2)

	byName := map[string]models.UserCard{}
	for _, c := range cards {
		byName[c.Username] = c
	}
	require.Len(t, byName["ada"].Skills, 1)
	assert.Equal(t, "Go", byName["ada"].Skills[0].Name)
	assert.Empty(t, byName["grace"].Skills)
}

func TestListUsersRejectsBadLimit(t *testing.T) {
	testutil.SetupDB(t)
	rec := newAPI(t).do(http.MethodGet, "/api/portfolio/users?limit=zero", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResume(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "ada")
	require.NoError(t, db.Create(&models.Experience{
		UserID: user.ID, Company: "Engines Ltd", Position: "Analyst",
		StartDate: testutil.Date(2020, 2, 1), IsCurrentRole: true,
	}).Error)
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/api/portfolio/ada/resume", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/markdown"))
	assert.Contains(t, rec.Body.String(), "### Analyst, Engines Ltd\nFeb 2020 - Present")

	rec = a.do(http.MethodGet, "/api/portfolio/ada/resume?format=json", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Portfolio
	decode(t, rec, &p)
	assert.Equal(t, "ada", p.Username)

	rec = a.do(http.MethodGet, "/api/portfolio/ada/resume?format=pdf", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/api/portfolio/ghost/resume", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func ptr[T any](v T) *T { return &v }
