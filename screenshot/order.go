package screenshot

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// ChannelOrder gives the byte offset of each color channel inside one
// 4-byte pixel as it lands in memory.
//
// Pixels are read back as packed 32-bit words with red in the least
// significant byte (GL_UNSIGNED_INT_8_8_8_8_REV). Where those bytes end up
// depends on host endianness, so the order has to be resolved per host.
type ChannelOrder struct {
	R, G, B, A int
}

// OrderFor returns the channel order of a packed RGBA word on a host with
// the given endianness.
func OrderFor(bigEndian bool) ChannelOrder {
	if bigEndian {
		return ChannelOrder{R: 3, G: 2, B: 1, A: 0}
	}
	return ChannelOrder{R: 0, G: 1, B: 2, A: 3}
}

var hostOrder = sync.OnceValue(func() ChannelOrder {
	return OrderFor(cpu.IsBigEndian)
})

// HostOrder returns the channel order for the running host. It is computed
// once.
func HostOrder() ChannelOrder {
	return hostOrder()
}
