package xxhash_test

import (
	"fmt"
	"testing"

	"github.com/Spyriounis/hashmap/pkg/xxhash"

	"github.com/pierrec/xxHash/xxHash64"
	"github.com/stretchr/testify/require"
)

// TestSum8 makes sure the reference implementation and
// the fixed-width variant produce the same results.
func TestSum8(t *testing.T) {
	for _, seed := range []uint64{
		0, 1, 5134, 2598712366, 936583347421323,
	} {
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			for _, v := range []uint64{
				0, 1, 42, 1 << 32, 0xdeadbeefcafebabe, ^uint64(0),
			} {
				require := require.New(t)
				b := xxhash.Bytes8(v)
				oh := xxHash64.New(seed)
				n, err := oh.Write(b[:])
				require.Equal(8, n)
				require.NoError(err)
				require.Equal(oh.Sum64(), xxhash.Sum8(seed, v), "value %d", v)
			}
		})
	}
}

func TestBytes8(t *testing.T) {
	require.Equal(t,
		[8]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		xxhash.Bytes8(0x0102030405060708),
	)
}
