package maintainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePackageMeta(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "author object",
			content: `{"author": {"name": "alice", "email": "alice@example.com"}}`,
			want:    []string{"alice"},
		},
		{
			name:    "author shorthand with email and url",
			content: `{"author": "bob <bob@example.com> (https://example.com)"}`,
			want:    []string{"bob"},
		},
		{
			name: "maintainers list mixing forms",
			content: `{
				"maintainers": [
					{"name": "alice"},
					"bob <bob@example.com>"
				]
			}`,
			want: []string{"alice", "bob"},
		},
		{
			name:    "author repeated in maintainers",
			content: `{"author": {"name": "alice"}, "maintainers": [{"name": "Alice"}, {"name": "bob"}]}`,
			want:    []string{"alice", "bob"},
		},
		{
			name:    "no people fields",
			content: `{"name": "widget", "version": "1.0.0"}`,
			want:    nil,
		},
		{
			name:    "malformed document",
			content: `{"author": `,
			want:    nil,
		},
		{
			name:    "empty string",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePackageMeta(tt.content))
		})
	}
}
