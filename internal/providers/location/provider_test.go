package location

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/urlargs/internal/params"
	"github.com/GriffinCanCode/urlargs/internal/shared/types"
)

type fakeRecorder struct {
	mu       sync.Mutex
	active   []int
	failures []string
}

func (f *fakeRecorder) SetActiveSessions(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = append(f.active, n)
}

func (f *fakeRecorder) RecordLinkOpenFailure(kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, kind)
}

func newTestProvider(t *testing.T) (*Provider, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	return NewProvider(Config{MaxSessions: 4, Recorder: rec}), rec
}

func exec(t *testing.T, p *Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, &types.Context{})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func create(t *testing.T, p *Provider, url string) string {
	t.Helper()
	result := exec(t, p, "location.create", map[string]interface{}{"url": url})
	require.True(t, result.Success, result.Error)
	return result.Data["session_id"].(string)
}

func TestDefinition(t *testing.T) {
	p, _ := newTestProvider(t)
	def := p.Definition()

	assert.Equal(t, "location", def.ID)
	assert.Equal(t, types.CategoryNavigation, def.Category)

	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		ids = append(ids, tool.ID)
	}
	assert.ElementsMatch(t, []string{
		"location.create", "location.close", "location.params", "location.parse",
		"location.set", "location.delete", "location.path", "location.hash",
		"location.setHash", "location.open",
	}, ids)
}

func TestCreateAndParams(t *testing.T) {
	p, rec := newTestProvider(t)

	result := exec(t, p, "location.create", map[string]interface{}{
		"url": "http://example.com/index.html?a&bb=1&c=spa%20ce#top",
	})
	require.True(t, result.Success)
	assert.Equal(t, []string{"http://example.com/index.html", "-a", "--bb=1", "-c=spa ce"}, result.Data["params"])
	assert.Equal(t, []string{"-a", "--bb=1", "-c=spa ce"}, result.Data["flags"])
	assert.Equal(t, "http://example.com/index.html", result.Data["path"])
	assert.Equal(t, "top", result.Data["hash"])
	assert.Equal(t, []int{1}, rec.active)

	created, err := time.Parse(time.RFC3339Nano, result.Data["created_at"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)

	sid := result.Data["session_id"].(string)
	listed := exec(t, p, "location.params", map[string]interface{}{"session_id": sid})
	require.True(t, listed.Success)
	assert.Equal(t, result.Data["params"], listed.Data["params"])
}

func TestParamsLookup(t *testing.T) {
	p, _ := newTestProvider(t)
	sid := create(t, p, "http://example.com/?x=1&y&x=2")

	tests := []struct {
		name      string
		lookup    string
		wantFound bool
		wantMatch params.Parsed
	}{
		{name: "last occurrence wins", lookup: "x", wantFound: true, wantMatch: params.Parsed{Name: "x", Value: "2", HasValue: true}},
		{name: "bare flag", lookup: "y", wantFound: true, wantMatch: params.Parsed{Name: "y"}},
		{name: "absent", lookup: "z", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := exec(t, p, "location.params", map[string]interface{}{"session_id": sid, "name": tt.lookup})
			require.True(t, result.Success)
			assert.Equal(t, tt.wantFound, result.Data["found"])
			if tt.wantFound {
				assert.Equal(t, tt.wantMatch, result.Data["match"])
			} else {
				assert.NotContains(t, result.Data, "match")
			}
		})
	}

	plain := exec(t, p, "location.params", map[string]interface{}{"session_id": sid})
	require.True(t, plain.Success)
	assert.NotContains(t, plain.Data, "found")
}

func TestCreateDefaultURL(t *testing.T) {
	p, _ := newTestProvider(t)

	result := exec(t, p, "location.create", nil)
	require.True(t, result.Success)
	assert.Equal(t, []string{"http://localhost/"}, result.Data["params"])
}

func TestCreateRejectsBadURL(t *testing.T) {
	p, _ := newTestProvider(t)

	result := exec(t, p, "location.create", map[string]interface{}{"url": "http://%zz"})
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "invalid location")
}

func TestSessionLimit(t *testing.T) {
	p, _ := newTestProvider(t)
	for i := 0; i < 4; i++ {
		create(t, p, "")
	}

	result := exec(t, p, "location.create", nil)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "session limit reached")
	assert.Equal(t, 4, p.Sessions().Count())
}

func TestClose(t *testing.T) {
	p, rec := newTestProvider(t)
	sid := create(t, p, "")

	result := exec(t, p, "location.close", map[string]interface{}{"session_id": sid})
	require.True(t, result.Success)
	assert.Equal(t, []int{1, 0}, rec.active)

	again := exec(t, p, "location.close", map[string]interface{}{"session_id": sid})
	assert.False(t, again.Success)
	assert.Contains(t, *again.Error, "session not found")
}

func TestSessionFromContext(t *testing.T) {
	p, _ := newTestProvider(t)
	sid := create(t, p, "http://example.com/?x=1")

	result, err := p.Execute(context.Background(), "location.params", nil, &types.Context{SessionID: &sid})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, []string{"http://example.com/", "-x=1"}, result.Data["params"])
}

func TestMissingSession(t *testing.T) {
	p, _ := newTestProvider(t)

	tests := []struct {
		name    string
		params  map[string]interface{}
		wantErr string
	}{
		{name: "absent", params: nil, wantErr: "session_id parameter required"},
		{name: "malformed", params: map[string]interface{}{"session_id": "sess_nope"}, wantErr: "malformed session id"},
		{name: "wrong kind", params: map[string]interface{}{"session_id": "req_01ARZ3NDEKTSV4RRFFQ69G5FAV"}, wantErr: "malformed session id"},
		{name: "unknown", params: map[string]interface{}{"session_id": "sess_01ARZ3NDEKTSV4RRFFQ69G5FAV"}, wantErr: "session not found"},
		{name: "wrong type", params: map[string]interface{}{"session_id": 7}, wantErr: "session_id must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := exec(t, p, "location.params", tt.params)
			assert.False(t, result.Success)
			assert.Contains(t, *result.Error, tt.wantErr)
		})
	}
}

func TestSetAndDelete(t *testing.T) {
	p, _ := newTestProvider(t)
	sid := create(t, p, "http://example.com/index.html")

	result := exec(t, p, "location.set", map[string]interface{}{
		"session_id": sid, "key": "something", "value": "spa ce",
	})
	require.True(t, result.Success)
	assert.Equal(t, []string{"http://example.com/index.html", "--something=spa ce"}, result.Data["params"])

	result = exec(t, p, "location.set", map[string]interface{}{"session_id": sid, "key": "v"})
	require.True(t, result.Success)
	assert.Equal(t, []string{"http://example.com/index.html", "--something=spa ce", "-v"}, result.Data["params"])

	result = exec(t, p, "location.delete", map[string]interface{}{"session_id": sid, "key": "something"})
	require.True(t, result.Success)
	assert.Equal(t, []string{"http://example.com/index.html", "-v"}, result.Data["params"])

	result = exec(t, p, "location.delete", map[string]interface{}{"session_id": sid, "key": "absent"})
	require.True(t, result.Success)
	assert.Equal(t, []string{"http://example.com/index.html", "-v"}, result.Data["params"])

	missing := exec(t, p, "location.set", map[string]interface{}{"session_id": sid})
	assert.False(t, missing.Success)
	assert.Contains(t, *missing.Error, "key parameter required")
}

func TestParse(t *testing.T) {
	p, _ := newTestProvider(t)

	tests := []struct {
		token     string
		wantName  string
		wantValue string
		wantHas   bool
	}{
		{token: "-x=1", wantName: "x", wantValue: "1", wantHas: true},
		{token: "--flag", wantName: "flag"},
		{token: "--k=", wantName: "k"},
		{token: "--", wantName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			result := exec(t, p, "location.parse", map[string]interface{}{"token": tt.token})
			require.True(t, result.Success)
			assert.Equal(t, tt.wantName, result.Data["name"])
			assert.Equal(t, tt.wantValue, result.Data["value"])
			assert.Equal(t, tt.wantHas, result.Data["has_value"])
		})
	}

	notParam := exec(t, p, "location.parse", map[string]interface{}{"token": "notaflag"})
	assert.False(t, notParam.Success)
	assert.Equal(t, false, notParam.Data["is_parameter"])
	assert.Equal(t, "not a parameter", *notParam.Error)
}

func TestPathAndHash(t *testing.T) {
	p, _ := newTestProvider(t)
	sid := create(t, p, "http://example.com/app?q=1")

	bare := exec(t, p, "location.path", map[string]interface{}{"session_id": sid})
	assert.Equal(t, "http://example.com/app", bare.Data["path"])

	full := exec(t, p, "location.path", map[string]interface{}{"session_id": sid, "full": true})
	assert.Equal(t, "http://example.com/app?q=1", full.Data["path"])

	hash := exec(t, p, "location.hash", map[string]interface{}{"session_id": sid})
	assert.Equal(t, "", hash.Data["hash"])

	set := exec(t, p, "location.setHash", map[string]interface{}{"session_id": sid, "hash": "section-2"})
	require.True(t, set.Success)
	assert.Equal(t, "section-2", set.Data["hash"])
	assert.Equal(t, "http://example.com/app?q=1#section-2", set.Data["full_path"])
}

func TestOpen(t *testing.T) {
	p, _ := newTestProvider(t)
	sid := create(t, p, "http://example.com/dir/index.html?a=1")

	tab := exec(t, p, "location.open", map[string]interface{}{
		"session_id": sid, "url": "other.html", "new_tab": true,
	})
	require.True(t, tab.Success)
	assert.Equal(t, []string{"http://example.com/dir/other.html"}, tab.Data["opened"])
	assert.Equal(t, "http://example.com/dir/index.html", tab.Data["path"])

	nav := exec(t, p, "location.open", map[string]interface{}{
		"session_id": sid, "url": "/next?b=2",
	})
	require.True(t, nav.Success)
	assert.Equal(t, []string{"http://example.com/next", "-b=2"}, nav.Data["params"])
	assert.Equal(t, []string{"http://example.com/dir/index.html?a=1"}, nav.Data["history"])
}

func TestOpenFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	rec := &fakeRecorder{}
	p := NewProvider(Config{Logger: zap.New(core), Recorder: rec})
	sid := create(t, p, "")

	result := exec(t, p, "location.open", map[string]interface{}{"session_id": sid, "url": "http://%zz"})
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "failed to open url")
	assert.Equal(t, []string{"memory"}, rec.failures)
	assert.Equal(t, 1, logs.FilterMessage("Failed to open url").Len())
}

func TestUnknownTool(t *testing.T) {
	p, _ := newTestProvider(t)

	result := exec(t, p, "location.teleport", nil)
	assert.False(t, result.Success)
	assert.Equal(t, "unknown tool: location.teleport", *result.Error)
}
