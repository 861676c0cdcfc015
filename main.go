// Command coapdump listens for CoAP datagrams on the default port and logs
// what the codec decodes from each one. It is a demo of the transport
// boundary, not a CoAP server: it runs no retransmission, routing, or
// resource handling, adapted from the teacher's main.go which wired its
// UDP loop straight into the cgo stack.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lobaro/coap-codec/codec"
	"github.com/lobaro/coap-codec/transport"
)

func main() {
	addr := fmt.Sprintf(":%d", codec.DefaultPort)
	sock, err := transport.NewUDPSocket(addr)
	if err != nil {
		logrus.WithError(err).Fatal("coapdump: failed to open UDP socket")
	}
	defer sock.Close()

	logrus.WithField("addr", sock.LocalAddr()).Info("coapdump: listening")

	for {
		p, from, err := sock.ReadPacket()
		if err != nil {
			logrus.WithError(err).Warn("coapdump: read failed")
			continue
		}

		msg, err := codec.Decode(p)
		if err != nil {
			logrus.WithError(err).WithField("from", from).Warn("coapdump: malformed packet")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"from":    from,
			"type":    msg.Type,
			"code":    msg.Code,
			"mid":     msg.MessageID,
			"options": len(msg.Options),
			"payload": len(msg.Payload),
		}).Info("coapdump: decoded packet")
	}
}
