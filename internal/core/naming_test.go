package core

import "testing"

func TestAnchorForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Routing", "routing"},
		{"Write a page", "write-a-page"},
		{"  Server / Client  ", "server-client"},
		{"CSS & Themes", "css-themes"},
		{"v2.0", "v2-0"},
		{"---", "entry"},
		{"", "entry"},
	}

	for _, tt := range tests {
		if got := AnchorForName(tt.name); got != tt.want {
			t.Errorf("AnchorForName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
