package wpssign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMD5Hex(t *testing.T) {
	t.Parallel()

	t.Run("empty body digest", func(t *testing.T) {
		require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", MD5Hex(nil))
		require.Equal(t, MD5Hex(nil), MD5Hex([]byte{}))
	})

	t.Run("known vector", func(t *testing.T) {
		require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", MD5Hex([]byte("abc")))
	})

	t.Run("always 32 lowercase hex chars", func(t *testing.T) {
		got := MD5Hex([]byte("The quick brown fox"))
		require.Len(t, got, 32)
		require.Regexp(t, `^[0-9a-f]{32}$`, got)
	})
}

func TestSHA1Hex(t *testing.T) {
	t.Parallel()

	t.Run("known vectors", func(t *testing.T) {
		require.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", SHA1Hex(""))
		require.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", SHA1Hex("abc"))
	})

	t.Run("always 40 lowercase hex chars", func(t *testing.T) {
		got := SHA1Hex("jsapi_ticket=abc&noncestr=def")
		require.Len(t, got, 40)
		require.Regexp(t, `^[0-9a-f]{40}$`, got)
	})
}

func TestHTTPDate(t *testing.T) {
	t.Parallel()

	t.Run("formats as RFC1123 GMT", func(t *testing.T) {
		at := time.Date(2025, time.November, 15, 8, 0, 0, 0, time.UTC)
		require.Equal(t, "Sat, 15 Nov 2025 08:00:00 GMT", HTTPDate(at))
	})

	t.Run("converts non-UTC instants", func(t *testing.T) {
		loc := time.FixedZone("AEST", 10*60*60)
		at := time.Date(2025, time.November, 15, 18, 0, 0, 0, loc)
		require.Equal(t, "Sat, 15 Nov 2025 08:00:00 GMT", HTTPDate(at))
	})
}

func TestNonce(t *testing.T) {
	t.Parallel()

	t.Run("respects requested length", func(t *testing.T) {
		require.Len(t, Nonce(DefaultNonceLength), 16)
		require.Len(t, Nonce(32), 32)
	})

	t.Run("only alphanumeric characters", func(t *testing.T) {
		for range 50 {
			require.Regexp(t, `^[A-Za-z0-9]{16}$`, Nonce(16))
		}
	})

	t.Run("successive nonces differ", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			n := Nonce(16)
			_, dup := seen[n]
			require.False(t, dup, "nonce %q generated twice", n)
			seen[n] = struct{}{}
		}
	})
}
