package normalize

import "testing"

func TestEmail(t *testing.T) {
	if got := Email("  Admin@Example.COM "); got != "admin@example.com" {
		t.Errorf("Email() = %q, want admin@example.com", got)
	}
}

func TestName(t *testing.T) {
	if got := Name("  Ada Lovelace  "); got != "Ada Lovelace" {
		t.Errorf("Name() = %q, want Ada Lovelace", got)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(" Read "); got != "read" {
		t.Errorf("Status() = %q, want read", got)
	}
}

func TestMobile(t *testing.T) {
	cases := map[string]string{
		"+1 (555) 123-4567": "+15551234567",
		"555.123.4567":      "5551234567",
		"  5551234567  ":    "5551234567",
	}
	for in, want := range cases {
		if got := Mobile(in); got != want {
			t.Errorf("Mobile(%q) = %q, want %q", in, got, want)
		}
	}
}
