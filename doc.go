// Package auth provides the authentication core for a gateway-style
// deployment: credential hashing and verification, a user store with
// login/password records, and a hybrid token scheme that combines stateless
// signed tokens with a per-user version counter for instant server-side
// revocation.
//
// Token lifecycle:
//   - CreateToken snapshots the user's current version into the signed
//     claims. Issuing tokens never changes the version, so any number of
//     tokens can be valid for a user at once.
//   - VerifyToken checks the signature, the embedded expiry, and that the
//     embedded version still equals the stored one. Revoke bumps the stored
//     counter, invalidating every previously issued token for that user with
//     a single counter write and no per-token bookkeeping.
//
// Storage:
//   - Users and TokenVersions are capability interfaces with Bun-backed
//     implementations. Memory adapters are provided so services can be
//     exercised without a database.
//
// The HTTP layer in http_controller.go maps cookie and form plumbing onto
// LoginService and TokenService. GET /auth/check is designed for a reverse
// proxy's subrequest authentication: side-effect free and a single version
// lookup per call.
package auth
