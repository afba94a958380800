package driveurl

import "testing"

func TestDirect(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{
			"https://drive.google.com/file/d/1AbC_dEf-123/view?usp=sharing",
			"https://drive.google.com/uc?export=download&id=1AbC_dEf-123",
		},
		{
			"https://drive.google.com/file/d/1AbC_dEf-123/edit",
			"https://drive.google.com/uc?export=download&id=1AbC_dEf-123",
		},
		{
			"https://drive.google.com/open?id=1AbC_dEf-123",
			"https://drive.google.com/uc?export=download&id=1AbC_dEf-123",
		},
		{
			"https://drive.google.com/uc?id=1AbC_dEf-123",
			"https://drive.google.com/uc?export=download&id=1AbC_dEf-123",
		},
		// non-Drive links pass through untouched
		{"https://example.com/img.png", "https://example.com/img.png"},
		{"https://docs.google.com/spreadsheets/d/xyz", "https://docs.google.com/spreadsheets/d/xyz"},
		{"", ""},
		{"not a url at all", "not a url at all"},
		// Drive link with nothing recognizable
		{"https://drive.google.com/drive/my-drive", "https://drive.google.com/drive/my-drive"},
	}

	for _, c := range cases {
		if got := Direct(c.in); got != c.want {
			t.Errorf("Direct(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
