package artifacts

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/process"
)

// AdHocIdentity is the codesign identity used when no certificate is found.
const AdHocIdentity = "-"

// identityLabels lists the certificate kinds in order of preference.
var identityLabels = []string{
	"Developer ID Application",
	"Apple Development",
	"3rd Party Mac Developer Application",
	"Mac Developer",
}

var identityHash = regexp.MustCompile(`[A-F0-9]{40}`)

// Identity is a signing certificate found in the keychain listing.
type Identity struct {
	Label string
	Hash  string
}

// ParseIdentities scans `security find-identity` output and returns the first
// hash seen for each known label, ordered by preference. A line is attributed
// to the first label, in preference order, that it contains.
func ParseIdentities(listing string) []Identity {
	found := make(map[string]string)
	for _, line := range strings.Split(listing, "\n") {
		for _, label := range identityLabels {
			if !strings.Contains(line, label) {
				continue
			}
			if hash := identityHash.FindString(line); hash != "" {
				if _, seen := found[label]; !seen {
					found[label] = hash
				}
				break
			}
		}
	}

	var out []Identity
	for _, label := range identityLabels {
		if hash, ok := found[label]; ok {
			out = append(out, Identity{Label: label, Hash: hash})
		}
	}
	return out
}

// Signer code-signs macOS bundles through the security and codesign tools.
type Signer struct {
	runner process.Runner
	log    *log.Logger
}

// NewSigner creates a Signer.
func NewSigner(runner process.Runner, logger *log.Logger) *Signer {
	return &Signer{runner: runner, log: logger}
}

// ResolveIdentity returns the hash of the most preferred signing identity in
// the keychain, or AdHocIdentity when the listing fails or holds no known
// identity.
func (s *Signer) ResolveIdentity(ctx context.Context) string {
	res, err := s.runner.Run(ctx, process.Command{
		Name: "security",
		Args: []string{"find-identity", "-v", "-p", "codesigning"},
	})
	if err != nil {
		s.log.Error("checking signing identities", "err", err)
		return AdHocIdentity
	}

	identities := ParseIdentities(string(res.Output))
	if len(identities) == 0 {
		s.log.Warn("no preferred signing identity found, using ad-hoc signing")
		return AdHocIdentity
	}

	s.log.Info("using signing identity", "identity", identities[0].Label)
	return identities[0].Hash
}

// SignBundle signs the bundle at bundlePath with hardened runtime and the
// configured entitlements, then verifies the signature. It returns true only
// when both steps succeed. Failures are logged, never returned.
func (s *Signer) SignBundle(ctx context.Context, bundlePath string, cfg config.Values) bool {
	identity := s.ResolveIdentity(ctx)

	args := []string{"--force", "--deep", "--timestamp", "--options", "runtime"}
	if entitlements := cfg.String(config.KeyEntitlementsFile); entitlements != "" {
		args = append(args, "--entitlements", entitlements)
	} else {
		s.log.Warn("no entitlements file configured")
	}
	args = append(args, "-s", identity, bundlePath)

	if _, err := s.runner.Run(ctx, process.Command{Name: "codesign", Args: args}); err != nil {
		s.log.Error("code signing failed", "bundle", bundlePath, "err", err)
		return false
	}
	s.log.Info("application signed", "bundle", bundlePath)

	verify := []string{"--verify", "--deep", "--strict", bundlePath}
	if _, err := s.runner.Run(ctx, process.Command{Name: "codesign", Args: verify}); err != nil {
		s.log.Error("signature verification failed", "bundle", bundlePath, "err", err)
		return false
	}
	s.log.Debug("signature verified", "bundle", bundlePath)
	return true
}
