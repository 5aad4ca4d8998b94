package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.NotEmpty(t, GetGitCommit())
	assert.NotEmpty(t, GetBuildDate())

	_, err := Parse(GetVersion())
	require.NoError(t, err, "the default version must be valid semver")
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, GetVersion(), info.Version)
	assert.Contains(t, info.Platform, "/")
	assert.NotEmpty(t, info.GoVersion)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1.2.3", want: "1.2.3"},
		{in: "v1.2.3", want: "1.2.3"},
		{in: "2", want: "2.0.0"},
		{in: "0.1.0-dev", want: "0.1.0-dev"},
		{in: "", wantErr: true},
		{in: "not.a.version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestIsDev(t *testing.T) {
	assert.True(t, IsDev("0.1.0-dev"))
	assert.True(t, IsDev("garbage"))
	assert.False(t, IsDev("1.0.0"))
	assert.False(t, IsDev("v1.0.0-rc.1"))
}
