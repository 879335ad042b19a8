// Package auth issues and verifies the signed identity tokens that gate the
// HTTP API. Tokens are HS256 JWTs carrying an email and an optional role hint,
// valid for a fixed 20 hours. There is no refresh or revocation; an expired
// token must be replaced by calling the issue endpoint again.
package auth
