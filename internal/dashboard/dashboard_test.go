package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/folio/internal/models"
)

func fieldNames(c Completeness) []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestEvaluateFieldOrderAndExclusions(t *testing.T) {
	c := Evaluate(models.EmptyProfile(uuid.New()))

	assert.Equal(t, []string{
		"tagline", "bio", "hobbies", "languages", "phoneNumber",
		"address", "levelOfExperience", "yearsOfExperience",
	}, fieldNames(c))
	for _, name := range Excluded {
		assert.NotContains(t, fieldNames(c), name)
	}
}

func TestEvaluateEmptyProfile(t *testing.T) {
	c := Evaluate(models.EmptyProfile(uuid.New()))

	// Only the defaulted experience level counts as filled.
	assert.Equal(t, 1, c.Filled)
	assert.Equal(t, 8, c.Total)
	assert.Equal(t, 12, c.Percent)
}

func TestEvaluateWhitespaceAndBlankLists(t *testing.T) {
	p := models.EmptyProfile(uuid.New())
	p.Tagline = "   "
	p.Bio = "Builds things"
	p.Hobbies = models.StringList{" ", ""}
	p.Languages = models.StringList{"Go"}
	p.Picture = "https://cdn.example.com/me.png"

	c := Evaluate(p)
	filled := map[string]bool{}
	for _, f := range c.Fields {
		filled[f.Field] = f.Filled
	}

	assert.False(t, filled["tagline"])
	assert.True(t, filled["bio"])
	assert.False(t, filled["hobbies"])
	assert.True(t, filled["languages"])
	_, hasPicture := filled["picture"]
	assert.False(t, hasPicture)
}

func TestEvaluateFullProfile(t *testing.T) {
	p := models.Profile{
		Tagline:           "Backend engineer",
		Bio:               "Go and Postgres",
		Hobbies:           models.StringList{"chess"},
		Languages:         models.StringList{"English"},
		PhoneNumber:       "+1 555 0100",
		Address:           "Lisbon",
		LevelOfExperience: models.LevelSenior,
		YearsOfExperience: 9,
	}

	c := Evaluate(p)
	require.Equal(t, c.Total, c.Filled)
	assert.Equal(t, 100, c.Percent)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(" \t\n"))
	assert.True(t, IsEmpty(0))
	assert.True(t, IsEmpty(false))
	assert.True(t, IsEmpty([]string{}))
	assert.True(t, IsEmpty((*string)(nil)))

	s := "x"
	assert.False(t, IsEmpty(&s))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(3))
	assert.False(t, IsEmpty([]string{"", "a"}))
}
