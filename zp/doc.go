// Package zp implements arithmetic over the prime field Z/pZ.
//
// What
//
//   - Field: a validated prime modulus p with Add, Sub, Neg, Mul and Inv,
//     all closed over Element values in [0, p).
//   - Element: a canonical residue. Norm maps any int64 into [0, p).
//
// Why
//
//	Boundary-matrix reduction needs exact division, which integer or
//	floating coefficients cannot provide. Expressing every matrix operation
//	through a Field makes the modulus a drop-in choice: persistence over
//	GF(2) and over Z/31Z differ only in the Field handed to the reducer.
//
// Errors
//
//   - ErrInvalidModulus — New rejects p ≤ 1 and composite p.
//   - ErrDivisionByZero — Inv rejects the zero element.
//
// Complexity
//
//	New is O(√p) (trial-division primality). Add/Sub/Neg/Mul are O(1);
//	Inv is O(log p) via the extended Euclidean algorithm.
package zp
