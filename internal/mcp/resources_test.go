package mcpserver

import "testing"

func TestExtractDocumentIDFromURI(t *testing.T) {
	cases := []struct {
		uri  string
		want string
	}{
		{"blockpad://document/abc-123/markdown", "abc-123"},
		{"blockpad://document//markdown", ""},
		{"blockpad://document/abc/extra/markdown", ""},
		{"blockpad://documents", ""},
		{"notes://document/abc/markdown", ""},
	}
	for _, c := range cases {
		if got := extractDocumentIDFromURI(c.uri); got != c.want {
			t.Errorf("extractDocumentIDFromURI(%q) = %q, want %q", c.uri, got, c.want)
		}
	}
}
