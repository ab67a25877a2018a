package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func never(RoomCode) bool { return false }

func TestGenerateCode_LengthAndAlphabet(t *testing.T) {
	req := require.New(t)

	code := GenerateCode(DefaultCodeLength, never)

	req.Len(string(code), DefaultCodeLength)
	for _, c := range string(code) {
		req.True(strings.ContainsRune(codeAlphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateCode_CustomLength(t *testing.T) {
	req := require.New(t)

	code := GenerateCode(10, never)

	req.Len(string(code), 10)
}

func TestGenerateCode_ResamplesOnCollision(t *testing.T) {
	req := require.New(t)

	// Given the first two candidates are already taken
	rejected := 0
	taken := func(RoomCode) bool {
		if rejected < 2 {
			rejected++
			return true
		}
		return false
	}

	// When a code is generated
	code := GenerateCode(DefaultCodeLength, taken)

	// Then both collisions were resampled
	req.Equal(2, rejected)
	req.Len(string(code), DefaultCodeLength)
}
