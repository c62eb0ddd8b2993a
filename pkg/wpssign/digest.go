// Package wpssign implements the WPS open-platform request signing scheme:
// lowercase hex digests, RFC1123 request dates, random nonces and the
// three-part X-Auth header computed over a canonical request tuple.
package wpssign

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

// DefaultNonceLength is the nonce length used for JSAPI signatures.
const DefaultNonceLength = 16

const nonceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// MD5Hex returns the MD5 digest of b as 32 lowercase hex characters.
// MD5Hex(nil) yields the well-known empty-body digest the platform expects
// on signed GET requests.
func MD5Hex(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

// SHA1Hex returns the SHA1 digest of s (UTF-8) as 40 lowercase hex characters.
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HTTPDate formats t as an RFC1123 GMT date, e.g.
// "Sat, 15 Nov 2025 08:00:00 GMT". This is the exact form the platform
// expects in the Date header and in the canonical request.
func HTTPDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// Nonce returns a random string of length n drawn uniformly from
// [A-Za-z0-9]. It panics if the system entropy source fails, which is
// unrecoverable anyway.
func Nonce(n int) string {
	out := make([]byte, n)

	// Rejection sampling keeps the distribution uniform: 62 does not divide
	// 256, so plain modulo would bias towards the low end of the alphabet.
	const limit = 256 - (256 % len(nonceAlphabet))
	buf := make([]byte, n*2)
	i := 0
	for i < n {
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Sprintf("wpssign: failed to read random bytes: %v", err))
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
			i++
			if i == n {
				break
			}
		}
	}

	return string(out)
}
