package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"chess", "reading, slowly", `quote "x"`}

	v, err := in.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)

	// sqlite hands text columns back as []byte
	var fromBytes StringList
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.Equal(t, in, fromBytes)
}

func TestStringListNil(t *testing.T) {
	var l StringList

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestExperienceCurrentRoleClearsEndDate(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	e := &Experience{StartDate: start, EndDate: &end, IsCurrentRole: true}

	require.NoError(t, e.BeforeSave(nil))
	assert.Nil(t, e.EndDate)
}

func TestExperienceRejectsEndBeforeStart(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	err := (&Experience{StartDate: start, EndDate: &end}).BeforeSave(nil)
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	err = (&Education{EndDate: &end}).BeforeSave(nil)
	assert.ErrorIs(t, err, ErrMissingStartDate)
}

func TestEducationOngoingClearsEndDate(t *testing.T) {
	start := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(4, 0, 0)
	e := &Education{StartDate: start, EndDate: &end, IsOngoing: true}

	require.NoError(t, e.BeforeSave(nil))
	assert.Nil(t, e.EndDate)
}

func TestProfileBeforeSave(t *testing.T) {
	p := &Profile{}
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, LevelJunior, p.LevelOfExperience)

	p.LevelOfExperience = "Wizard"
	assert.ErrorIs(t, p.BeforeSave(nil), ErrInvalidExperienceLevel)

	p.LevelOfExperience = LevelSenior
	p.YearsOfExperience = -1
	assert.ErrorIs(t, p.BeforeSave(nil), ErrNegativeYearsExperience)
}

func TestParseSkillLevel(t *testing.T) {
	l, err := ParseSkillLevel(" advanced ")
	require.NoError(t, err)
	assert.Equal(t, SkillAdvanced, l)

	_, err = ParseSkillLevel("guru")
	assert.ErrorIs(t, err, ErrInvalidSkillLevel)
}

func TestNewPortfolioDefaults(t *testing.T) {
	u := &User{Username: "ada", Name: "Ada", Email: "ada@example.com", Password: "hash"}
	u.ID = uuid.New()

	p := NewPortfolio(u)

	assert.Equal(t, u.ID, p.Profile.UserID)
	assert.NotNil(t, p.Socials)
	assert.NotNil(t, p.Links)
	assert.NotNil(t, p.Experiences)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.Skills)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "password")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, []any{}, decoded["experiences"])
	assert.Equal(t, []any{}, decoded["profile"].(map[string]any)["hobbies"])
}

func TestUserJSONOmitsPassword(t *testing.T) {
	b, err := json.Marshal(User{Username: "ada", Password: "secret-hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
}
