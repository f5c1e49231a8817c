package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/folio/pkg/client"
)

func reply(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok", "data": data})
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "yaml", []client.Skill{{ID: "1", Name: "Go", Level: "EXPERT"}}))
	assert.Equal(t, "- id: \"1\"\n  name: Go\n  level: EXPERT\n", buf.String())
}

func TestFindCommand(t *testing.T) {
	assert.NotNil(t, findCommand("login"))
	assert.Nil(t, findCommand("launch"))
}

func TestLoginSavesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]any{"user": map[string]string{"username": "ada"}, "token": "tok-123"})
	}))
	defer srv.Close()

	var out bytes.Buffer
	env := &Env{
		Client:    client.New(srv.URL),
		Out:       &out,
		Format:    "yaml",
		TokenFile: filepath.Join(t.TempDir(), "folio", "token"),
	}
	require.NoError(t, (&LoginCommand{}).Execute(context.Background(), env, []string{"ada", "password123"}))
	assert.Equal(t, "Signed in as ada\n", out.String())
	assert.Equal(t, "tok-123", loadToken(env.TokenFile))
}

func TestListSkills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/skill", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		reply(w, []client.Skill{{ID: "1", Name: "Go", Level: "EXPERT"}})
	}))
	defer srv.Close()

	var out bytes.Buffer
	env := &Env{Client: client.New(srv.URL, client.WithToken("tok")), Out: &out, Format: "json"}
	require.NoError(t, (&ListCommand{}).Execute(context.Background(), env, []string{"skills"}))

	var skills []client.Skill
	require.NoError(t, json.Unmarshal(out.Bytes(), &skills))
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)

	err := (&ListCommand{}).Execute(context.Background(), env, []string{"pets"})
	assert.ErrorContains(t, err, "unknown entity")
}

func TestListWithoutSession(t *testing.T) {
	env := &Env{Client: client.New("http://127.0.0.1:1"), Out: &bytes.Buffer{}, Format: "yaml"}
	err := (&ListCommand{}).Execute(context.Background(), env, []string{"links"})
	assert.ErrorIs(t, err, client.ErrUnauthenticated)
}
