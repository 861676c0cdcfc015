package transport

import (
	"net"

	"golang.org/x/net/ipv6"
)

// UDPSocket is the one reference Socket implementation this repository
// ships: a thin wrapper over a UDP listener that moves bytes in and out,
// nothing more. It is adapted from the teacher's udp6socket
// (socket/udp6socket.go), which wraps an ipv6.PacketConn the same way; the
// retransmission, interface/ifID bookkeeping, and multicast join logic the
// teacher builds around it are out of scope here (spec.md §1) and are not
// reproduced.
type UDPSocket struct {
	conn  *ipv6.PacketConn
	local net.Addr
}

// NewUDPSocket listens on addr (e.g. ":5683", spec.md §6's default CoAP
// port) and wraps the resulting connection for raw datagram exchange.
func NewUDPSocket(addr string) (*UDPSocket, error) {
	pc, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, err
	}
	return &UDPSocket{
		conn:  ipv6.NewPacketConn(pc),
		local: pc.LocalAddr(),
	}, nil
}

// ReadPacket reads one datagram, sized to spec.md's MaxMessageSize.
func (s *UDPSocket) ReadPacket() (p []byte, addr net.Addr, err error) {
	buf := make([]byte, 1460)
	n, _, remote, err := s.conn.ReadFrom(buf)
	if err != nil {
		return nil, nil, err
	}
	return buf[:n], remote, nil
}

// WritePacket writes one datagram to addr.
func (s *UDPSocket) WritePacket(p []byte, addr net.Addr) error {
	_, err := s.conn.WriteTo(p, nil, addr)
	return err
}

// Close releases the underlying connection.
func (s *UDPSocket) Close() error {
	return s.conn.Close()
}

// LocalAddr reports the address this socket is bound to.
func (s *UDPSocket) LocalAddr() net.Addr {
	return s.local
}
