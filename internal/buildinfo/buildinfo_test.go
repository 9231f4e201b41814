package buildinfo

import "testing"

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	defer func() { Version, Commit, Date = oldVersion, oldCommit, oldDate }()

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"1.0.0", "", "", "1.0.0"},
		{"", "", "", "dev"},
		{"1.2.3", "0123456789abcdef", "", "1.2.3 (commit=0123456)"},
		{"1.2.3", "abc", "2026-10-19", "1.2.3 (commit=abc, date=2026-10-19)"},
	}
	for _, tt := range tests {
		Version, Commit, Date = tt.version, tt.commit, tt.date
		if got := Summary(); got != tt.want {
			t.Fatalf("Summary() = %q, want %q", got, tt.want)
		}
	}
}
