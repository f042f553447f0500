// SPDX-License-Identifier: MIT

// Package cone finds the fundamental rays of a polyhedral cone
// { x : a_i·x ≤ 0 } with the Motzkin–Burger elimination method.
//
// 🚀 How it works
//
//	The solver keeps two sets while it walks the inequalities in order:
//	  • basis      : generators of the subspace not yet constrained;
//	  • fundamental: candidate rays satisfying every inequality seen so far.
//
//	While some basis vector is not orthogonal to the current inequality the
//	basis shrinks by one dimension and the first such vector turns into a ray.
//	Once the basis is exhausted, rays on opposite sides of the inequality are
//	paired and combined into rays lying on its hyperplane. A pair is combined
//	only if no third ray already vanishes on every earlier inequality that
//	both members vanish on.
//
//	Afterwards every ray is re-checked against the full system and rays that
//	vanish on fewer than rank−1 inequalities are discarded as degenerate.
//
// ⚙️ Usage:
//
//	rays, err := cone.Solve(ctx, ineqs, nil, 3)
//	if errors.Is(err, cone.ErrCancelled) { ... }
//
// Cancellation:
//
//	The context is checked before the first step and once per inequality.
//	A cancelled solve never returns partial rays.
//
// Logging:
//
//	Steps are logged through klog at verbosity 3, post-processing at 2.
//
// Complexity:
//
//	Exponential in the worst case (the usual double-description blow-up).
package cone
