package mentor

import "testing"

func TestDetectDistress(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		found   bool
	}{
		{name: "exact word", text: "I'm completely stuck on this", keyword: "stuck", found: true},
		{name: "case insensitive", text: "SO FRUSTRATED right now", keyword: "frustrated", found: true},
		{name: "phrase keyword", text: "honestly I have no idea where to start", keyword: "no idea", found: true},
		{name: "one-letter typo", text: "I'm so frustated with pricing", keyword: "frustrated", found: true},
		{name: "neutral text", text: "Here are my ten customer interviews", found: false},
		{name: "empty text", text: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyword, found := DetectDistress(tt.text)
			if found != tt.found {
				t.Fatalf("found = %t, want %t (keyword %q)", found, tt.found, keyword)
			}
			if found && keyword != tt.keyword {
				t.Errorf("keyword = %q, want %q", keyword, tt.keyword)
			}
		})
	}
}

func TestDetectBreakthrough(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		found   bool
	}{
		{name: "exact word", text: "I just realized who my customer is", keyword: "realized", found: true},
		{name: "phrase keyword", text: "it finally makes sense now", keyword: "makes sense now", found: true},
		{name: "short marker", text: "Aha! That's the segment.", keyword: "aha", found: true},
		{name: "typo tolerated", text: "everything just clickd for me", keyword: "clicked", found: true},
		{name: "neutral text", text: "Let me rewrite the hypothesis", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyword, found := DetectBreakthrough(tt.text)
			if found != tt.found {
				t.Fatalf("found = %t, want %t (keyword %q)", found, tt.found, keyword)
			}
			if found && keyword != tt.keyword {
				t.Errorf("keyword = %q, want %q", keyword, tt.keyword)
			}
		})
	}
}
