package domain

import (
	"math/rand/v2"
	"strings"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultCodeLength matches the codes handed out to users.
const DefaultCodeLength = 6

// GenerateCode produces a random uppercase code of the given length that
// is not already taken. Generation is pure: reserving the code against
// concurrent creates is the registry's job, which calls this under its
// own lock. Collisions are resampled; with realistic registry sizes a
// single try almost always succeeds, but the contract does not assume it.
func GenerateCode(length int, taken func(RoomCode) bool) RoomCode {
	var b strings.Builder
	for {
		b.Reset()
		for i := 0; i < length; i++ {
			b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
		}
		code := RoomCode(b.String())
		if !taken(code) {
			return code
		}
	}
}
