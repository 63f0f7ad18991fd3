package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ConfigHash returns the canonical SHA-256 hex digest of cfg. Two
// configs that differ only in nested-map insertion order or in
// LastUpdated hash equal: Go's encoding/json already serializes map
// keys in sorted order, and canonicalize strips LastUpdated and
// re-renders every float through a fixed-precision formatter so that
// numerically identical configurations (e.g. 0.05 arriving as 0.0500)
// hash equal too.
func ConfigHash(cfg EngineConfig) (string, error) {
	canonical, err := canonicalizeConfig(cfg)
	if err != nil {
		return "", fmt.Errorf("canonicalize config: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalizeConfig renders cfg to canonical JSON: LastUpdated is
// dropped, map keys are sorted (via a generic round-trip through
// map[string]interface{}), and every float is re-rendered with
// %.10g so two equal values serialize identically regardless of how
// they arrived (0.05 vs 0.05000000000001 after a range sweep, etc.).
func canonicalizeConfig(cfg EngineConfig) ([]byte, error) {
	cfg.LastUpdated = nil

	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	canonicalizeFloats(generic)

	// encoding/json serializes map[string]interface{} keys in sorted
	// order, so a direct Marshal of the generic tree is canonical.
	return json.Marshal(generic)
}

// canonicalizeFloats rewrites every float64 leaf in v (a tree of
// map[string]interface{}/[]interface{}/scalar from encoding/json) to
// its %.10g string form, replacing the leaf with that string so the
// final JSON encoding is stable across equivalent float
// representations. Non-float leaves are left untouched.
func canonicalizeFloats(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			val[k] = canonicalizeFloats(child)
		}
		return val
	case []interface{}:
		for i, child := range val {
			val[i] = canonicalizeFloats(child)
		}
		return val
	case float64:
		return fmt.Sprintf("%.10g", val)
	default:
		return val
	}
}

