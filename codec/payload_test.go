package codec

import "testing"

func TestSetPayloadGetPayloadRoundTrip(t *testing.T) {
	buf := buildHeaderOnly(t, 0, MaxMessageSize)
	length := HeaderLength

	length, err := SetPayload(buf, length, []byte("hi"))
	if err != nil {
		t.Fatalf("SetPayload: %v", err)
	}

	payload, err := GetPayload(buf[:length], 0)
	if err != nil {
		t.Fatalf("GetPayload: %v", err)
	}
	if string(payload) != "hi" {
		t.Errorf("payload = %q, want %q", payload, "hi")
	}
}

func TestSetPayloadRejectsEmpty(t *testing.T) {
	buf := buildHeaderOnly(t, 0, MaxMessageSize)
	length := HeaderLength
	newLength, err := SetPayload(buf, length, nil)
	if !errIsKind(err, InvalidPayload) {
		t.Fatalf("SetPayload(nil) = %v, want InvalidPayload", err)
	}
	if newLength != length {
		t.Errorf("newLength = %d, want unchanged %d", newLength, length)
	}
}

func TestSetPayloadRejectsInsufficientBuffer(t *testing.T) {
	buf := buildHeaderOnly(t, 0, HeaderLength+1)
	length := HeaderLength
	if _, err := SetPayload(buf, length, []byte("too long")); !errIsKind(err, InsufficientBuffer) {
		t.Fatalf("SetPayload past capacity = %v, want InsufficientBuffer", err)
	}
}

func TestGetPayloadNoMarkerReturnsNilWithoutLooping(t *testing.T) {
	buf := buildHeaderOnly(t, 0, MaxMessageSize)
	length := HeaderLength
	length, err := AddOption(buf, length, 0, uint32(URIPath), []byte("a"))
	if err != nil {
		t.Fatalf("AddOption: %v", err)
	}

	payload, err := GetPayload(buf[:length], 0)
	if err != nil {
		t.Fatalf("GetPayload: %v", err)
	}
	if payload != nil {
		t.Errorf("payload = %q, want nil (no marker present)", payload)
	}
}

func TestGetPayloadMarkerWithNothingAfterIsInvalid(t *testing.T) {
	buf := buildHeaderOnly(t, 0, MaxMessageSize)
	length := HeaderLength
	length, err := SetPayload(buf, length, []byte{0x00})
	if err != nil {
		t.Fatalf("SetPayload: %v", err)
	}
	// Truncate to just past the marker byte.
	truncated := buf[:length-1]
	if _, err := GetPayload(truncated, 0); !errIsKind(err, InvalidPacket) {
		t.Fatalf("GetPayload with empty trailing payload = %v, want InvalidPacket", err)
	}
}
