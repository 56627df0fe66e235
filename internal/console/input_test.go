package console

import "testing"

func TestParseChoice(t *testing.T) {
	valid := map[string]int{"0": 0, "1": 1, " 2 ": 2, "007": 7, "123456789": 123456789}
	for s, want := range valid {
		in := ParseChoice(s)
		if in.Kind != Valid || in.N != want {
			t.Fatalf("ParseChoice(%q)=%+v want Valid(%d)", s, in, want)
		}
	}
	for _, s := range []string{"", " ", "x", "1 2", "1x", "-1", "+1", "1.0", "1234567890"} {
		if in := ParseChoice(s); in.Kind != Invalid {
			t.Fatalf("ParseChoice(%q)=%+v want Invalid", s, in)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if in := ParseAmount("-1"); in.Kind != Cancel {
		t.Fatalf("-1 => %+v want Cancel", in)
	}
	if in := ParseAmount(" -1 "); in.Kind != Cancel {
		t.Fatalf("' -1 ' => %+v want Cancel", in)
	}
	if in := ParseAmount("-5"); in.Kind != Valid || in.N != -5 {
		t.Fatalf("-5 => %+v want Valid(-5)", in)
	}
	if in := ParseAmount("90"); in.Kind != Valid || in.N != 90 {
		t.Fatalf("90 => %+v want Valid(90)", in)
	}
	for _, s := range []string{"", "-", "--5", "abc", "9 0", "-1x"} {
		if in := ParseAmount(s); in.Kind != Invalid {
			t.Fatalf("ParseAmount(%q)=%+v want Invalid", s, in)
		}
	}
}
