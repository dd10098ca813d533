package mentionbox

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestParseSemver(t *testing.T) {
	cases := []struct {
		version string
		want    Semver
		ok      bool
	}{
		{version: "0.1.0", want: Semver{Minor: 1}, ok: true},
		{version: "1.2.3-alpha.1", want: Semver{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.1"}, ok: true},
		{version: "2.0.0+build.7", want: Semver{Major: 2}, ok: true},
		{version: "v1.2.3"},
		{version: "1.2"},
		{version: "01.2.3"},
	}

	for _, tc := range cases {
		got, err := ParseSemver(tc.version)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseSemver(%q): err=%v, want ok=%v", tc.version, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseSemver(%q): got %+v, want %+v", tc.version, got, tc.want)
		}
	}
}

func TestSemver_String(t *testing.T) {
	v := Semver{Major: 1, Minor: 4, Patch: 0, Pre: "rc.2"}
	if got := v.String(); got != "1.4.0-rc.2" {
		t.Fatalf("string: got %q, want %q", got, "1.4.0-rc.2")
	}
}
