package codec

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
	"time"
)

// RandomSource is the single-call RNG boundary spec.md §5 names: the codec
// consumes it to seed message-ids but does not specify its implementation.
type RandomSource interface {
	GetRandom() uint16
}

var weakRand = struct {
	mu  sync.Mutex
	rnd *mrand.Rand
}{rnd: mrand.New(mrand.NewSource(time.Now().UnixNano()))}

// DefaultRandomSource draws from crypto/rand, falling back to a seeded
// math/rand source if the platform's CSPRNG read fails — the same fallback
// shape as GiterLab-go-secoap's RandMID (secoapcore/msg_id.go), adapted to
// return the single uint16 this codec's boundary asks for.
type DefaultRandomSource struct{}

func (DefaultRandomSource) GetRandom() uint16 {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		weakRand.mu.Lock()
		v := uint16(weakRand.rnd.Uint32())
		weakRand.mu.Unlock()
		return v
	}
	return binary.BigEndian.Uint16(b[:])
}
