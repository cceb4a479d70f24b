package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Dependency-free ULID generator for job ids: 26 Crockford Base32
// characters, 48-bit millisecond timestamp prefix, random tail. A
// per-millisecond sequence keeps ids unique under bursts.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

func generateULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	// Sequence in bytes 6-7 guarantees uniqueness within the same ms.
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	return encodeBase32(b)
}

// encodeBase32 packs 128 bits into 26 Crockford Base32 characters: the
// bytes are treated as a 130-bit field with 2 leading zero bits, sliced
// 5 bits per character from the high end.
func encodeBase32(b [16]byte) string {
	bitAt := func(i int) byte {
		if i < 2 {
			return 0
		}
		i -= 2
		return (b[i/8] >> (7 - i%8)) & 1
	}

	var out [26]byte
	for c := range out {
		var v byte
		for k := 0; k < 5; k++ {
			v = v<<1 | bitAt(c*5+k)
		}
		out[c] = crockford[v]
	}
	return string(out[:])
}
