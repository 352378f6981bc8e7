package slug

import "testing"

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Foo Bar":          "foo-bar",
		"foo   bar":        "foo-bar",
		"New Window!":      "new-window",
		"already-a-slug":   "already-a-slug",
		"":                 "",
		"Ünïcode Ok 42":    "ncode-ok-42",
		"tab\tseparated":   "tabseparated",
		" leading":         "-leading",
		"Kill  -- Session": "kill----session",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Fatalf("Make(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{"Foo Bar", "a  b  c", "x_y.z", "ÄÖÜ", "--", "Mixed CASE 99", "   "}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not idempotent for %q: %q then %q", in, once, twice)
		}
		if !Valid(once) {
			t.Fatalf("Make(%q) produced invalid slug %q", in, once)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("foo-bar-9") {
		t.Fatalf("expected foo-bar-9 to be valid")
	}
	if Valid("Foo") {
		t.Fatalf("expected uppercase to be invalid")
	}
	if Valid("foo bar") {
		t.Fatalf("expected space to be invalid")
	}
}
