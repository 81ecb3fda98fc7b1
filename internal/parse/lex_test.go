package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "build -v",
			want:  []string{"build", "-v"},
		},
		{
			name:  "quoted option value",
			input: `--mode "release candidate"`,
			want:  []string{"--mode", "release candidate"},
		},
		{
			name:  "attached quoted value",
			input: `--define='a b,c'`,
			want:  []string{"--define=a b,c"},
		},
		{
			name:  "multiple quotes",
			input: `echo "first quote" 'second quote'`,
			want:  []string{"echo", "first quote", "second quote"},
		},
		{
			name:  "escaped quotes",
			input: `echo \"hello\"`,
			want:  []string{"echo", `"hello"`},
		},
		{
			name:  "multiple spaces",
			input: "cmd   arg1    arg2",
			want:  []string{"cmd", "arg1", "arg2"},
		},
		{
			name:  "terminator is kept",
			input: "run -- -x",
			want:  []string{"run", "--", "-x"},
		},
		{
			name:    "unterminated quote",
			input:   `echo "open`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_Blank(t *testing.T) {
	for _, input := range []string{"", "   "} {
		got, err := Split(input)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}
