package resume

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/folio/internal/models"
)

func date(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestMarkdown(t *testing.T) {
	end := date(2021, time.June)
	u := &models.User{Username: "ada", Name: "Ada Lovelace", Email: "ada@example.com"}
	p := models.NewPortfolio(u)
	p.Profile.Tagline = "Analyst"
	p.Profile.Languages = models.StringList{"English", "French"}
	p.Experiences = []models.Experience{
		{Company: "Engines Ltd", Position: "Lead", StartDate: date(2022, time.March), IsCurrentRole: true},
		{Company: "Looms", Position: "Engineer", StartDate: date(2019, time.January), EndDate: &end},
	}
	p.Skills = []models.Skill{{Name: "Go", Level: models.SkillExpert}}
	p.Links = []models.Link{{Label: "Blog", URL: "https://ada.dev"}}

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, p))
	out := buf.String()

	assert.Contains(t, out, "# Ada Lovelace\n")
	assert.Contains(t, out, "_Analyst_")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "### Lead, Engines Ltd\nMar 2022 - Present")
	assert.Contains(t, out, "### Engineer, Looms\nJan 2019 - Jun 2021")
	assert.Contains(t, out, "- Go (Expert)")
	assert.Contains(t, out, "English, French")
	assert.Contains(t, out, "- Blog: https://ada.dev")
	assert.NotContains(t, out, "## Education")
	assert.NotContains(t, out, "## Projects")
}

func TestMarkdownFallsBackToUsername(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, models.NewPortfolio(&models.User{Username: "ghost"})))
	assert.Equal(t, "# ghost\n", buf.String())
}
