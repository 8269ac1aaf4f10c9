package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	tests := []struct {
		name    string
		version string
		commit  string
		builtAt string
		want    string
	}{
		{name: "development", want: "0.0.0-dev (development)"},
		{name: "commit only", version: "1.2.0", commit: "abc1234", want: "1.2.0 (commit: abc1234)"},
		{
			name: "full", version: "1.2.0", commit: "abc1234", builtAt: "2026-10-01T08:00:00Z",
			want: "1.2.0 (commit: abc1234, built at: 2026-10-01T08:00:00Z)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, BuildTime = tt.version, tt.commit, tt.builtAt
			assert.Equal(t, tt.want, FormatVersion())
		})
	}
}

func TestCheckLatestVersion_SkipsDevBuilds(t *testing.T) {
	assert.NotPanics(t, func() { CheckLatestVersion("0.3.0-dev") })
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.10.0", "1.9.3", true},
		{"1.2.0", "1.2.0", false},
		{"1.2.0", "1.2.1", false},
		{"2.0.0", "1.99.99", true},
		{"1.3.0", "1.2.9-dirty", true},
		{"v1.2.1", "1.2.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.latest+"_vs_"+tt.current, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewer(tt.latest, tt.current))
		})
	}
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v0.4.2","name":"0.4.2"}`))
	}))
	defer srv.Close()

	got, err := LatestRelease(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "0.4.2", got)
}

func TestLatestRelease_Errors(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()

	_, err := LatestRelease(context.Background(), notFound.Client(), notFound.URL)
	assert.ErrorContains(t, err, "unexpected status 404")

	noTag := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer noTag.Close()

	_, err = LatestRelease(context.Background(), noTag.Client(), noTag.URL)
	assert.Error(t, err)
}

func TestApplyBuildInfo(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "9f3c2a1b7e6d5c4b3a291807f6e5d4c3b2a19080"},
		{Key: "vcs.time", Value: "2026-10-01T08:00:00+02:00"},
		{Key: "vcs.modified", Value: "true"},
	}

	t.Run("installed module", func(t *testing.T) {
		Version, Commit, BuildTime = devVersion, "", ""
		applyBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v0.4.2"}, Settings: settings})

		assert.Equal(t, "0.4.2-dirty", Version)
		assert.Equal(t, "9f3c2a1", Commit)
		assert.Equal(t, "2026-10-01T06:00:00Z", BuildTime)
	})

	t.Run("local build keeps dev version", func(t *testing.T) {
		Version, Commit, BuildTime = devVersion, "", ""
		applyBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

		assert.Equal(t, devVersion, Version)
		assert.Empty(t, Commit)
		assert.Empty(t, BuildTime)
	})

	t.Run("ldflags win", func(t *testing.T) {
		Version, Commit, BuildTime = "1.0.0", "abc1234", "2026-01-01T00:00:00Z"
		applyBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v0.4.2"}, Settings: settings})

		assert.Equal(t, "1.0.0", Version)
		assert.Equal(t, "abc1234", Commit)
		assert.Equal(t, "2026-01-01T00:00:00Z", BuildTime)
	})
}
