// Package identity computes stable identifiers for resolved build
// configurations, so that builds made from the same configuration can be
// correlated across runs and hosts.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/platform"
)

// NamespaceUUID is the UUID v5 namespace for configuration identities.
// Computed as: uuid.NewSHA1(uuid.NameSpaceDNS, []byte("appbuild.dev"))
var NamespaceUUID = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("appbuild.dev"))

// canonical serializes values deterministically. encoding/json sorts map
// keys at every level.
func canonical(values config.Values) ([]byte, error) {
	data, err := json.Marshal(map[string]any(values))
	if err != nil {
		return nil, fmt.Errorf("serializing configuration: %w", err)
	}
	return data, nil
}

// ConfigDigest returns "sha256:<hex>" over the canonical serialization of
// values. The digest is independent of map iteration order.
func ConfigDigest(values config.Values) (string, error) {
	data, err := canonical(values)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}

// ConfigID returns a UUID v5 identifying the configuration resolved for p.
// The same values on the same platform always yield the same ID.
func ConfigID(values config.Values, p platform.Platform) (string, error) {
	data, err := canonical(values)
	if err != nil {
		return "", err
	}
	name := append([]byte(p.String()+":"), data...)
	return uuid.NewSHA1(NamespaceUUID, name).String(), nil
}
