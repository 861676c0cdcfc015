package codec

import "testing"

func TestOptionIDClassification(t *testing.T) {
	cases := []struct {
		id       OptionID
		name     string
		critical bool
		unsafe   bool
	}{
		{IfMatch, "If-Match", true, false},
		{URIHost, "Uri-Host", true, true},
		{ETag, "ETag", false, false},
		{IfNoneMatch, "If-None-Match", true, false},
		{URIPort, "Uri-Port", true, true},
		{LocationPath, "Location-Path", false, false},
		{URIPath, "Uri-Path", true, true},
		{ContentFormat, "Content-Format", false, false},
		{MaxAge, "Max-Age", false, true},
		{URIQuery, "Uri-Query", true, true},
		{Accept, "Accept", true, false},
		{LocationQuery, "Location-Query", false, false},
		{ProxyURI, "Proxy-Uri", true, true},
		{ProxyScheme, "Proxy-Scheme", true, true},
		{Size1, "Size1", false, false},
	}

	for _, c := range cases {
		if got := c.id.String(); got != c.name {
			t.Errorf("OptionID(%d).String() = %q, want %q", c.id, got, c.name)
		}
		if got := c.id.Critical(); got != c.critical {
			t.Errorf("OptionID(%d).Critical() = %v, want %v", c.id, got, c.critical)
		}
		if got := c.id.UnSafe(); got != c.unsafe {
			t.Errorf("OptionID(%d).UnSafe() = %v, want %v", c.id, got, c.unsafe)
		}
		if !c.id.known() {
			t.Errorf("OptionID(%d) should be known", c.id)
		}
	}
}

func TestOptionIDUnknownIsUnnamedButStillClassifiable(t *testing.T) {
	unknown := OptionID(30)
	if unknown.known() {
		t.Fatalf("OptionID(30) should not be known")
	}
	if got := unknown.String(); got != "Unknown" {
		t.Errorf("OptionID(30).String() = %q, want Unknown", got)
	}
	if unknown.Critical() {
		t.Errorf("OptionID(30).Critical() = true, want false (even-numbered options are elective)")
	}

	unknownOdd := OptionID(33)
	if !unknownOdd.Critical() {
		t.Errorf("OptionID(33).Critical() = false, want true (odd-numbered options are critical)")
	}
}
