//go:build apkdebug

package apk

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/lightclient-labs/apk-prover/apkerr"
	"github.com/lightclient-labs/apk-prover/internal/constraints"
	"github.com/lightclient-labs/apk-prover/internal/domain"
)

// checkInvariants verifies, in debug builds only, that each constraint
// vector independently vanishes on the small domain (after the "skip last
// row" factor for A1/A2) before they are ever combined with phi. This
// catches an arithmetization bug immediately, pointing at the offending
// constraint, rather than surfacing as an opaque vanishing-polynomial
// division failure once the five are already folded together.
func checkInvariants(d *domain.Domains, v constraints.Vectors) error {
	skipLastRow := bigDomainSkipFactor(d)

	if err := checkVanishes(d, mulPointwise(v.A1, skipLastRow), "A1"); err != nil {
		return err
	}
	if err := checkVanishes(d, mulPointwise(v.A2, skipLastRow), "A2"); err != nil {
		return err
	}
	if err := checkVanishes(d, v.A3, "A3"); err != nil {
		return err
	}
	if err := checkVanishes(d, v.A4, "A4"); err != nil {
		return err
	}
	if err := checkVanishes(d, v.A5, "A5"); err != nil {
		return err
	}
	return nil
}

func bigDomainSkipFactor(d *domain.Domains) []fr.Element {
	pts := d.BigDomainPoints()
	omegaNm1 := d.ElementAt(d.Size - 1)
	out := make([]fr.Element, len(pts))
	for i := range out {
		out[i].Sub(&pts[i], &omegaNm1)
	}
	return out
}

func mulPointwise(a, b []fr.Element) []fr.Element {
	out := make([]fr.Element, len(a))
	for i := range out {
		out[i].Mul(&a[i], &b[i])
	}
	return out
}

func checkVanishes(d *domain.Domains, evalsBig []fr.Element, name string) error {
	p := domain.FromBigDomainEvals(d, evalsBig)
	if _, err := p.DivideByVanishing(d.Size); err != nil {
		return apkerr.Invariantf("constraint %s does not vanish on the domain: %v", name, err)
	}
	return nil
}
