package artifacts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/appbuild/cli/internal/errors"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    [4]int
		wantErr bool
	}{
		{"two components", "1.2", [4]int{1, 2, 0, 0}, false},
		{"three components", "1.0.0", [4]int{1, 0, 0, 0}, false},
		{"four components", "10.20.30.40", [4]int{10, 20, 30, 40}, false},
		{"single component", "7", [4]int{7, 0, 0, 0}, false},
		{"surrounding space", " 2.0 ", [4]int{2, 0, 0, 0}, false},
		{"too many components", "1.2.3.4.5", [4]int{}, true},
		{"non numeric", "1.a.0", [4]int{}, true},
		{"pre-release suffix", "1.0.0-beta", [4]int{}, true},
		{"empty component", "1..2", [4]int{}, true},
		{"negative", "-1.0", [4]int{}, true},
		{"empty", "", [4]int{}, true},
		{"out of range", "70000.0", [4]int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeVersion(tt.version)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrVersionFormat))

				var vErr *VersionFormatError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.version, vErr.Version)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionTuple(t *testing.T) {
	assert.Equal(t, "1,2,0,0", VersionTuple([4]int{1, 2, 0, 0}))
	assert.Equal(t, "0,0,0,0", VersionTuple([4]int{}))
}
