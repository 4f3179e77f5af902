package artifacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/process"
)

const (
	hashA = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	hashB = "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"
	hashC = "0123456789ABCDEF0123456789ABCDEF01234567"
)

func TestParseIdentities(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		want    []Identity
	}{
		{
			name:    "empty",
			listing: "",
			want:    nil,
		},
		{
			name:    "no valid identities",
			listing: "     0 valid identities found\n",
			want:    nil,
		},
		{
			name: "preference order wins over listing order",
			listing: "  1) " + hashA + " \"Apple Development: Jane (TEAM1)\"\n" +
				"  2) " + hashB + " \"Developer ID Application: Jane (TEAM1)\"\n" +
				"     2 valid identities found\n",
			want: []Identity{
				{Label: "Developer ID Application", Hash: hashB},
				{Label: "Apple Development", Hash: hashA},
			},
		},
		{
			name:    "3rd party label is not mistaken for Mac Developer",
			listing: "  1) " + hashC + " \"3rd Party Mac Developer Application: Jane (TEAM1)\"\n",
			want:    []Identity{{Label: "3rd Party Mac Developer Application", Hash: hashC}},
		},
		{
			name:    "label without hash is ignored",
			listing: "  Developer ID Application without a hash\n",
			want:    nil,
		},
		{
			name:    "lowercase hash is ignored",
			listing: "  1) " + "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" + " \"Mac Developer: Jane\"\n",
			want:    nil,
		},
		{
			name: "first hash per label is kept",
			listing: "  1) " + hashA + " \"Mac Developer: Jane\"\n" +
				"  2) " + hashB + " \"Mac Developer: John\"\n",
			want: []Identity{{Label: "Mac Developer", Hash: hashA}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIdentities(tt.listing))
		})
	}
}

func TestSigner_ResolveIdentity(t *testing.T) {
	t.Run("prefers developer id", func(t *testing.T) {
		runner := process.NewFakeRunner().On("security", process.FakeResponse{
			Output: "  1) " + hashA + " \"Apple Development: Jane\"\n  2) " + hashB + " \"Developer ID Application: Jane\"\n",
		})

		got := NewSigner(runner, output.Discard()).ResolveIdentity(context.Background())
		assert.Equal(t, hashB, got)

		calls := runner.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"find-identity", "-v", "-p", "codesigning"}, calls[0].Args)
	})

	t.Run("ad-hoc when listing fails", func(t *testing.T) {
		runner := process.NewFakeRunner().On("security", process.FakeResponse{ExitCode: 1})
		got := NewSigner(runner, output.Discard()).ResolveIdentity(context.Background())
		assert.Equal(t, AdHocIdentity, got)
	})

	t.Run("ad-hoc when nothing matches", func(t *testing.T) {
		runner := process.NewFakeRunner().On("security", process.FakeResponse{Output: "0 valid identities found\n"})
		got := NewSigner(runner, output.Discard()).ResolveIdentity(context.Background())
		assert.Equal(t, "-", got)
	})
}

func TestSigner_SignBundle(t *testing.T) {
	cfg := config.Values{config.KeyEntitlementsFile: "entitlements.plist"}
	bundle := "dist/MyApp.app"

	t.Run("sign and verify succeed", func(t *testing.T) {
		runner := process.NewFakeRunner().On("security", process.FakeResponse{
			Output: "  1) " + hashA + " \"Developer ID Application: Jane\"\n",
		})

		ok := NewSigner(runner, output.Discard()).SignBundle(context.Background(), bundle, cfg)
		assert.True(t, ok)

		calls := runner.Calls()
		require.Len(t, calls, 3)
		assert.Equal(t, "codesign", calls[1].Name)
		assert.Equal(t, []string{
			"--force", "--deep", "--timestamp", "--options", "runtime",
			"--entitlements", "entitlements.plist",
			"-s", hashA, bundle,
		}, calls[1].Args)
		assert.Equal(t, []string{"--verify", "--deep", "--strict", bundle}, calls[2].Args)
	})

	t.Run("ad-hoc identity is passed through", func(t *testing.T) {
		runner := process.NewFakeRunner().On("security", process.FakeResponse{ExitCode: 1})

		ok := NewSigner(runner, output.Discard()).SignBundle(context.Background(), bundle, cfg)
		assert.True(t, ok)
		assert.Contains(t, runner.Calls()[1].Args, "-")
	})

	t.Run("signing failure skips verification", func(t *testing.T) {
		runner := process.NewFakeRunner().On("codesign", process.FakeResponse{ExitCode: 1})

		ok := NewSigner(runner, output.Discard()).SignBundle(context.Background(), bundle, cfg)
		assert.False(t, ok)
		assert.Len(t, runner.Calls(), 2)
	})

	t.Run("verification failure", func(t *testing.T) {
		runner := process.NewFakeRunner().
			On("codesign", process.FakeResponse{}).
			On("codesign", process.FakeResponse{ExitCode: 3})

		ok := NewSigner(runner, output.Discard()).SignBundle(context.Background(), bundle, cfg)
		assert.False(t, ok)
		assert.Len(t, runner.Calls(), 3)
	})

	t.Run("no entitlements configured", func(t *testing.T) {
		runner := process.NewFakeRunner()

		ok := NewSigner(runner, output.Discard()).SignBundle(context.Background(), bundle, config.Values{})
		assert.True(t, ok)
		assert.NotContains(t, runner.Calls()[1].Args, "--entitlements")
	})
}
