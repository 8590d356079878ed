// Package auth implements credential issuance and stateless session
// authentication.
//
// Sessions are self-contained signed tokens carried in a cookie; no
// session record is stored server-side. The holder of a valid,
// unexpired token is treated as the user named in its payload, and
// logout only removes the client's copy of the token.
//
// The package is split along the request pipeline:
//
//   - Hasher: bcrypt password hashing and verification
//   - Codec: HMAC-signed token issue/verify with embedded expiry
//   - CookieManager: binds tokens to the session cookie
//   - Service: register/login orchestration against the user store
//
// HTTP handlers for the auth endpoints live in internal/http.
package auth
