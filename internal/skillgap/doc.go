// Package skillgap ranks catalogue skills from a digital science maturity and
// skills survey by how much they are needed and by how far need outstrips
// available and sustainable access.
//
// # Pipeline
//
// Each respondent rates every skill on three dimensions: need (N), access (A)
// and sustainability (S). The pipeline runs once over a loaded table:
//
//  1. Locate: the first column whose question contains the skill code is the
//     need column, the next two are access and sustainability. Their labels
//     must contain "need", "access" and "sustain".
//  2. Code: cell text is mapped through the policy's agreement scale.
//     "Don't Know" and blank cells are kept apart as unresolved responses.
//  3. Resolve: unresolved responses are replaced by per-dimension substitutes.
//     By default everything resolves to the neutral 0 except "Don't Know" for
//     sustainability, which takes the most pessimistic rating.
//  4. Aggregate: per skill
//
//	need             = mean(N)
//	gap              = mean(N_i - min(A_i, S_i))
//	unsustainability = mean(A) - mean(S)
//
// # Usage
//
//	calc, err := skillgap.NewCalculator(skillgap.DefaultCatalogue(), skillgap.DefaultPolicy(), logger)
//	if err != nil {
//	    return err
//	}
//	result, err := calc.Calculate(ctx, table)
//
// # Scale
//
// The -2..+2 coding and the substitutes are policy choices rather than
// properties of the survey. Earlier analyses used 0..4 and 1..5 scales, so
// Policy is configurable and validated with ValidatePolicy.
package skillgap
