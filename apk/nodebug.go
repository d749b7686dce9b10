//go:build !apkdebug

package apk

import (
	"github.com/lightclient-labs/apk-prover/internal/constraints"
	"github.com/lightclient-labs/apk-prover/internal/domain"
)

// checkInvariants is a no-op in release builds; the combined quotient's
// final divisibility check in quotient.Divide still runs unconditionally,
// so an unsound proof is never produced silently — only the per-constraint
// diagnostic (pinpointing which of A1..A5 failed) is skipped.
func checkInvariants(*domain.Domains, constraints.Vectors) error { return nil }
