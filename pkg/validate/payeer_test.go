package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPayeerAccount(t *testing.T) {
	tests := []struct {
		name     string
		account  string
		expected bool
	}{
		{name: "seven digits", account: "P1234567", expected: true},
		{name: "ten digits", account: "P1234567890", expected: true},
		{name: "too short", account: "P123456", expected: false},
		{name: "too long", account: "P12345678901", expected: false},
		{name: "missing prefix", account: "1234567", expected: false},
		{name: "lowercase prefix", account: "p1234567", expected: false},
		{name: "letters in number", account: "P12345A7", expected: false},
		{name: "empty", account: "", expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPayeerAccount(tt.account))
		})
	}
}
