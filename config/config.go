// Package config holds the protocol parameters absorbed first into the
// Fiat-Shamir transcript ("preprocessing" step of the transcript protocol):
// domain size, curve identifiers and protocol version. Params is loadable
// from a small YAML document so a deployment can pin these without a
// recompile.
package config

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"

	"github.com/lightclient-labs/apk-prover/apkerr"
)

// Params are the public, pre-agreed protocol parameters.
type Params struct {
	// DomainSize is n, the evaluation domain size (a power of two).
	DomainSize uint64 `yaml:"domain_size"`
	// InnerCurve names the curve the accumulated points live on.
	InnerCurve string `yaml:"inner_curve"`
	// OuterCurve names the curve the KZG commitments live on.
	OuterCurve string `yaml:"outer_curve"`
	// Version is the protocol version, e.g. "1.0.0".
	Version string `yaml:"version"`
}

// Default returns the parameters this module was built against.
func Default(domainSize uint64) Params {
	return Params{
		DomainSize: domainSize,
		InnerCurve: "bls12-377",
		OuterCurve: "bw6-761",
		Version:    "1.0.0",
	}
}

// Load parses a YAML-encoded Params document.
func Load(data []byte) (Params, error) {
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, apkerr.Configurationf("parsing config: %v", err)
	}
	return p, nil
}

// Validate checks DomainSize is a power of two and the semver string parses.
func (p Params) Validate() error {
	if p.DomainSize < 2 || bits.OnesCount64(p.DomainSize) != 1 {
		return apkerr.Configurationf("domain size %d is not a power of two >= 2", p.DomainSize)
	}
	if _, err := semver.Parse(p.Version); err != nil {
		return apkerr.Configurationf("invalid protocol version %q: %v", p.Version, err)
	}
	return nil
}

// Encode returns the canonical byte encoding absorbed into the transcript.
func (p Params) Encode() []byte {
	buf := make([]byte, 8, 8+len(p.InnerCurve)+len(p.OuterCurve)+len(p.Version)+3)
	binary.BigEndian.PutUint64(buf, p.DomainSize)
	buf = append(buf, []byte(fmt.Sprintf("|%s|%s|%s", p.InnerCurve, p.OuterCurve, p.Version))...)
	return buf
}
