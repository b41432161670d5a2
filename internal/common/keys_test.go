package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyStreamKnownKeys(t *testing.T) {
	ks := KeyStream{Seed: 0x1638567, Size: 32}

	require.Equal(t, "8b55f08ab5b04206c1a96986320edab2150302f94f8a7af312339a7b84f5a030",
		hex.EncodeToString(ks.Key(nil, 0)))
	require.Equal(t, "2f2ace0d028729423d9b9c3fa9b048373396282bc87a1571d7975af63072c513",
		hex.EncodeToString(ks.Key(nil, 1)))
}

func TestKeyStreamTruncatesToSize(t *testing.T) {
	ks := KeyStream{Seed: 1, Size: 5}
	require.Equal(t, uint64(1), ks.WordsPerKey())

	key := ks.Key(nil, 2)
	require.Len(t, key, 5)
	require.Equal(t, "5e5532fbee", hex.EncodeToString(key))
}

func TestKeyStreamReusesBuffer(t *testing.T) {
	ks := KeyStream{Seed: 7, Size: 32}
	buf := make([]byte, 0, 64)

	a := append([]byte(nil), ks.Key(buf, 10)...)
	b := ks.Key(buf, 10)
	require.Equal(t, a, b)
	require.Equal(t, &buf[:1][0], &b[0], "key should be written into dst")

	require.NotEqual(t, a, ks.Key(nil, 11))
	require.NotEqual(t, a, KeyStream{Seed: 8, Size: 32}.Key(nil, 10))
}
