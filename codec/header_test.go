package codec

import "testing"

func TestEncodeHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, MaxMessageSize)
	length, err := EncodeHeader(buf, Version, Confirmable, 4, GET, 0x1234)
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	if length != HeaderLength {
		t.Fatalf("EncodeHeader length = %d, want %d", length, HeaderLength)
	}

	if v, err := GetVersion(buf); err != nil || v != Version {
		t.Errorf("GetVersion = (%d, %v), want (%d, nil)", v, err, Version)
	}
	if typ, err := GetType(buf); err != nil || typ != Confirmable {
		t.Errorf("GetType = (%v, %v), want (Confirmable, nil)", typ, err)
	}
	if tkl, err := GetTokenLength(buf); err != nil || tkl != 4 {
		t.Errorf("GetTokenLength = (%d, %v), want (4, nil)", tkl, err)
	}
	if c, err := GetCode(buf); err != nil || c != GET {
		t.Errorf("GetCode = (%v, %v), want (GET, nil)", c, err)
	}
	if mid, err := GetMessageID(buf); err != nil || mid != 0x1234 {
		t.Errorf("GetMessageID = (0x%x, %v), want (0x1234, nil)", mid, err)
	}
}

func TestGetVersionRejectsWrongVersion(t *testing.T) {
	buf := []byte{0x80, 0x01, 0x00, 0x00} // version bits = 2
	if _, err := GetVersion(buf); !errIsKind(err, InvalidVersion) {
		t.Fatalf("GetVersion on version-2 byte = %v, want InvalidVersion", err)
	}
}

func TestGetTokenLengthRejectsReserved(t *testing.T) {
	buf := []byte{0x4F, 0x01, 0x00, 0x00} // tkl nibble = 15
	if _, err := GetTokenLength(buf); !errIsKind(err, InvalidTokenLength) {
		t.Fatalf("GetTokenLength with tkl=15 = %v, want InvalidTokenLength", err)
	}
}

func TestGetCodeRejectsUnknown(t *testing.T) {
	buf := []byte{0x40, 0x1F, 0x00, 0x00}
	if _, err := GetCode(buf); !errIsKind(err, UnknownCode) {
		t.Fatalf("GetCode(0x1F) = %v, want UnknownCode", err)
	}
}

func TestHeaderAccessorsRejectShortBuffer(t *testing.T) {
	short := []byte{0x40, 0x01, 0x00}
	if _, err := GetVersion(short); !errIsKind(err, InvalidPacket) {
		t.Fatalf("GetVersion on 3-byte buffer = %v, want InvalidPacket", err)
	}
	if _, err := GetMessageID(short); !errIsKind(err, InvalidPacket) {
		t.Fatalf("GetMessageID on 3-byte buffer = %v, want InvalidPacket", err)
	}
}

func TestSetFieldsPreserveNeighboringBits(t *testing.T) {
	buf := make([]byte, HeaderLength)
	if err := SetVersion(buf, Version); err != nil {
		t.Fatal(err)
	}
	if err := SetType(buf, Acknowledgement); err != nil {
		t.Fatal(err)
	}
	if err := SetTokenLength(buf, 5); err != nil {
		t.Fatal(err)
	}
	if v, _ := GetVersion(buf); v != Version {
		t.Errorf("version clobbered by later setters: got %d", v)
	}
	if typ, _ := GetType(buf); typ != Acknowledgement {
		t.Errorf("type clobbered by later setters: got %v", typ)
	}
	if tkl, _ := GetTokenLength(buf); tkl != 5 {
		t.Errorf("tkl = %d, want 5", tkl)
	}
}

func errIsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
