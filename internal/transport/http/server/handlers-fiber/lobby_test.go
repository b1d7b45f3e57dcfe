package handlers_fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/repository/memory"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop().Sugar()
	repo := memory.New(log)
	require.NoError(t, repo.OnStart(context.Background()))

	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(log, usecase.New(log, context.Background(), repo, time.Second)))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func create(t *testing.T, app *fiber.App, body string) string {
	t.Helper()
	resp, raw := do(t, app, http.MethodPost, "/api/lobbies", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var created api.CreatedLobby
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotEmpty(t, created.Id)
	return created.Id
}

func TestLobbyLifecycle(t *testing.T) {
	app := newApp(t)

	id := create(t, app, `{"lobbyName":"Channel Orange","memberIDs":["u1"],"company":"UMM"}`)

	resp, raw := do(t, app, http.MethodGet, "/api/lobbies/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lobby api.Lobby
	require.NoError(t, json.Unmarshal(raw, &lobby))
	require.Equal(t, id, lobby.Id)
	require.Equal(t, "Channel Orange", lobby.LobbyName)
	require.Equal(t, []string{"u1"}, lobby.MemberIDs)
	require.Equal(t, "UMM", *lobby.Company)

	resp, _ = do(t, app, http.MethodDelete, "/api/lobbies/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, "/api/lobbies/"+id, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/lobbies/"+id, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetLobbyBadID(t *testing.T) {
	app := newApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/lobbies/bad", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, api.INVALIDIDENTIFIER, body.Error.Code)
}

func TestPostLobbiesValidation(t *testing.T) {
	app := newApp(t)

	for _, payload := range []string{`{"lobbyName":""}`, `{"memberIDs":["u1"]}`} {
		resp, raw := do(t, app, http.MethodPost, "/api/lobbies", payload)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Equal(t, api.INVALIDARGUMENT, body.Error.Code)
		require.Contains(t, body.Error.Message, "non-empty lobby name")
	}

	resp, _ := do(t, app, http.MethodPost, "/api/lobbies", `{"lobbyName":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLobbiesFilterAndSort(t *testing.T) {
	app := newApp(t)
	create(t, app, `{"lobbyName":"Channel Orange"}`)
	create(t, app, `{"lobbyName":"You Will Never Know Why"}`)

	for _, pattern := range []string{"channel", "CHANNEL", "Channel"} {
		resp, raw := do(t, app, http.MethodGet, "/api/lobbies?lobbyName="+pattern+"&unknown=1", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var lobbies []api.Lobby
		require.NoError(t, json.Unmarshal(raw, &lobbies))
		require.Len(t, lobbies, 1)
		require.Equal(t, "Channel Orange", lobbies[0].LobbyName)
	}

	resp, raw := do(t, app, http.MethodGet, "/api/lobbies?sortby=lobbyName&sortorder=desc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lobbies []api.Lobby
	require.NoError(t, json.Unmarshal(raw, &lobbies))
	require.Len(t, lobbies, 2)
	require.Equal(t, "You Will Never Know Why", lobbies[0].LobbyName)

	resp, raw = do(t, app, http.MethodGet, "/api/lobbies?lobbyName=nothing-matches", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(raw))

	resp, _ = do(t, app, http.MethodGet, "/api/lobbies?lobbyName=%5Ba-", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLobbyMembers(t *testing.T) {
	app := newApp(t)
	id := create(t, app, `{"lobbyName":"Chris"}`)

	resp, raw := do(t, app, http.MethodPost, "/api/lobbies/"+id+"/members", `{"memberId":"u1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var roster api.Roster
	require.NoError(t, json.Unmarshal(raw, &roster))
	require.Equal(t, []string{"u1"}, roster.MemberIDs)

	resp, raw = do(t, app, http.MethodPost, "/api/lobbies/"+id+"/members", `{"memberId":"u1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &roster))
	require.Equal(t, []string{"u1"}, roster.MemberIDs)

	resp, _ = do(t, app, http.MethodPost, "/api/lobbies/"+id+"/members", `{"memberId":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/lobbies/6f1f3d0e-8a4b-4c55-9a39-0e9d6b8f0c11/members", `{"memberId":"u1"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = do(t, app, http.MethodDelete, "/api/lobbies/"+id+"/members/u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &roster))
	require.Empty(t, roster.MemberIDs)

	resp, _ = do(t, app, http.MethodDelete, "/api/lobbies/"+id+"/members/u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetLobbiesByCompany(t *testing.T) {
	app := newApp(t)
	create(t, app, `{"lobbyName":"a1","company":"A"}`)
	create(t, app, `{"lobbyName":"b1","company":"B"}`)
	create(t, app, `{"lobbyName":"a2","company":"A"}`)
	create(t, app, `{"lobbyName":"solo"}`)

	resp, raw := do(t, app, http.MethodGet, "/api/lobbiesByCompany?sortBy=count&sortOrder=desc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var groups []api.CompanySummary
	require.NoError(t, json.Unmarshal(raw, &groups))
	require.Len(t, groups, 3)
	require.Equal(t, "A", *groups[0].Company)
	require.Equal(t, 2, groups[0].Count)
	require.Equal(t, []string{"a1", "a2"}, []string{groups[0].Lobbies[0].Name, groups[0].Lobbies[1].Name})

	total := 0
	for _, g := range groups {
		require.Len(t, g.Lobbies, g.Count)
		total += g.Count
	}
	require.Equal(t, 4, total)
}
