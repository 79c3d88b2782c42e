// Package token signs and verifies session tokens.
//
// Tokens are compact JWS strings signed with RS256. A [KeyPair] is loaded
// once at startup and is read-only afterwards, so a [Codec] is safe for
// concurrent use. Decoding verifies the signature and the algorithm only;
// expiry is a policy decision left to the caller.
package token
