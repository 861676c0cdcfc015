package transport

// Compile-time checks that UDPSocket satisfies the boundary interfaces a
// caller is expected to implement or consume.
var (
	_ PacketReader = (*UDPSocket)(nil)
	_ PacketWriter = (*UDPSocket)(nil)
	_ Socket       = (*UDPSocket)(nil)
)
