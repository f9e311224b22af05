package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "resume.pdf", want: "resume.pdf"},
		{name: "slashes replaced", in: "dir/resume.pdf", want: "dir_resume.pdf"},
		{name: "backslashes replaced", in: `dir\resume.pdf`, want: "dir_resume.pdf"},
		{name: "traversal rejected", in: "../etc/passwd", wantErr: true},
		{name: "empty rejected", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeFileName(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
