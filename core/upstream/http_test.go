package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sports-catalog/core/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Config) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv, Config{
		BaseURL:               srv.URL + "/api/v1/json",
		APIKey:                "123",
		RequestsPerMinute:     6000,
		Burst:                 100,
		TimeoutSeconds:        5,
		CacheTTLSeconds:       60,
		BreakerFailures:       3,
		BreakerTimeoutSeconds: 60,
	}
}

func TestFetchTeamsByLeague(t *testing.T) {
	var gotPath, gotLeague string
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLeague = r.URL.Query().Get("l")
		w.Write([]byte(`{"teams":[
			{"idTeam":"133604","strTeam":"Arsenal","strLeague":"English Premier League","strBadge":"https://img/arsenal.png","intFormedYear":"1886","strStadium":"Emirates Stadium"},
			{"idTeam":133612,"strTeam":" Chelsea ","strTeamBadge":"https://img/chelsea.png","intFormedYear":null}
		]}`))
	})

	client := NewClient(cfg, nil, zap.NewNop())
	teams, err := client.FetchTeamsByLeague(context.Background(), "English Premier League")

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/json/123/search_all_teams.php", gotPath)
	assert.Equal(t, "English Premier League", gotLeague)
	require.Len(t, teams, 2)
	assert.Equal(t, Team{
		ID:         "133604",
		Name:       "Arsenal",
		League:     "English Premier League",
		Badge:      "https://img/arsenal.png",
		Stadium:    "Emirates Stadium",
		FormedYear: 1886,
	}, teams[0])
	assert.Equal(t, "133612", teams[1].ID)
	assert.Equal(t, "Chelsea", teams[1].Name)
	assert.Equal(t, "https://img/chelsea.png", teams[1].Badge)
}

func TestFetchTeamsByLeague_NullList(t *testing.T) {
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teams":null}`))
	})

	client := NewClient(cfg, nil, zap.NewNop())
	teams, err := client.FetchTeamsByLeague(context.Background(), "Unknown League")

	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestFetchTeamByID_NotFound(t *testing.T) {
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teams":null}`))
	})

	client := NewClient(cfg, nil, zap.NewNop())
	team, err := client.FetchTeamByID(context.Background(), "1")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, team)
}

func TestFetchPlayersByTeam(t *testing.T) {
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "133604", r.URL.Query().Get("id"))
		w.Write([]byte(`{"player":[
			{"idPlayer":"34145937","strPlayer":"Bukayo Saka","strTeam":"Arsenal","idTeam":"133604","strPosition":"Right Winger","strNationality":"England"},
			{"idPlayer":null,"strPlayer":"Trialist","strTeam":"Arsenal"}
		]}`))
	})

	client := NewClient(cfg, nil, zap.NewNop())
	players, err := client.FetchPlayersByTeam(context.Background(), "133604")

	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "34145937", players[0].ID)
	assert.Equal(t, "Right Winger", players[0].Position)
	assert.Equal(t, "", players[1].ID)
	assert.Equal(t, "133604", players[1].TeamID)
}

func TestFetchMatchesByTeam(t *testing.T) {
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events":[
			{"idEvent":"2070001","strEvent":"Arsenal vs Chelsea","strLeague":"English Premier League","dateEvent":"2026-11-01","strTime":"15:00:00","strHomeTeam":"Arsenal","strAwayTeam":"Chelsea","strHomeTeamBadge":"https://img/arsenal.png","strAwayTeamBadge":""}
		]}`))
	})

	client := NewClient(cfg, nil, zap.NewNop())
	matches, err := client.FetchMatchesByTeam(context.Background(), "133604")

	require.NoError(t, err)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "2070001", m.ID)
	assert.Equal(t, "Arsenal vs Chelsea", m.Event)
	assert.Equal(t, "133604", m.TeamID)
	require.NotNil(t, m.HomeBadge)
	assert.Equal(t, "https://img/arsenal.png", *m.HomeBadge)
	assert.Nil(t, m.AwayBadge)
}

func TestFetch_StatusError(t *testing.T) {
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("missing"))
	})

	client := NewClient(cfg, nil, zap.NewNop())
	_, err := client.FetchTeamsByLeague(context.Background(), "x")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestFetch_UsesResponseCache(t *testing.T) {
	var calls atomic.Int32
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"teams":[{"idTeam":"1","strTeam":"Arsenal"}]}`))
	})

	store := cache.NewMemory("", 0)
	defer store.Close()
	client := NewClient(cfg, store, zap.NewNop())

	for i := 0; i < 3; i++ {
		teams, err := client.FetchTeamsByLeague(context.Background(), "EPL")
		require.NoError(t, err)
		require.Len(t, teams, 1)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_BreakerOpensOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	client := NewClient(cfg, nil, zap.NewNop())

	for i := 0; i < 5; i++ {
		_, err := client.FetchTeamsByLeague(context.Background(), "EPL")
		require.Error(t, err)
	}

	// Three failures open the circuit; later calls never reach the server.
	assert.Equal(t, int32(3), calls.Load())
	_, err := client.FetchTeamsByLeague(context.Background(), "EPL")
	assert.True(t, isRejected(err))
}

func TestFetch_ClientErrorsDoNotOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	client := NewClient(cfg, nil, zap.NewNop())

	for i := 0; i < 5; i++ {
		_, _ = client.FetchTeamsByLeague(context.Background(), "EPL")
	}

	assert.Equal(t, int32(5), calls.Load())
}

func TestFetch_SharedRequestSurvivesCallerCancel(t *testing.T) {
	var calls atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	var once sync.Once
	unblock := func() { once.Do(func() { close(release) }) }
	t.Cleanup(unblock)

	_, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		arrived <- struct{}{}
		<-release
		w.Write([]byte(`{"player":[{"idPlayer":"7","strPlayer":"Bukayo Saka","idTeam":"42"}]}`))
	})
	client := NewClient(cfg, nil, zap.NewNop())

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := client.FetchPlayersByTeam(ctxA, "42")
		errA <- err
	}()
	<-arrived

	type result struct {
		players []Player
		err     error
	}
	resB := make(chan result, 1)
	go func() {
		players, err := client.FetchPlayersByTeam(context.Background(), "42")
		resB <- result{players, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	unblock()
	res := <-resB
	require.NoError(t, res.err)
	require.Len(t, res.players, 1)
	assert.Equal(t, "7", res.players[0].ID)
	assert.Equal(t, int32(1), calls.Load())
}
