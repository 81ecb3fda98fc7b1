package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockTerminal for testing
type MockTerminal struct {
	IsTerminalResult bool
	Width            int
	Err              error
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	return m.IsTerminalResult
}

func (m *MockTerminal) GetSize(fd int) (int, int, error) {
	return m.Width, 24, m.Err
}

func TestTerminalWidth(t *testing.T) {
	sizeErr := errors.New("ioctl failed")

	tests := []struct {
		name    string
		mock    *MockTerminal
		want    int
		wantErr error
	}{
		{
			name: "attached terminal",
			mock: &MockTerminal{IsTerminalResult: true, Width: 120},
			want: 120,
		},
		{
			name:    "not a terminal",
			mock:    &MockTerminal{IsTerminalResult: false, Width: 120},
			wantErr: ErrNotATerminal,
		},
		{
			name:    "size query fails",
			mock:    &MockTerminal{IsTerminalResult: true, Err: sizeErr},
			wantErr: sizeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TerminalWidth(1, tt.mock)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
