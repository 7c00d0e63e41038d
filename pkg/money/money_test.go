package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "already exact", in: 7000, expected: 7000},
		{name: "rounds down", in: 1.234, expected: 1.23},
		{name: "rounds up", in: 1.235, expected: 1.24},
		{name: "half away from zero", in: 10.005, expected: 10.01},
		{name: "thirty percent split", in: 12.3 * 0.3, expected: 3.69},
		{name: "exchange markup", in: 100 * 1.03, expected: 103},
		{name: "zero", in: 0, expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round2(tt.in))
		})
	}
}
