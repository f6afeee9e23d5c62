package utils

import "math/rand"

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the number of random characters after the prefix.
const CodeLength = 6

// CodePrefix marks a reservation code as a guest-facing reference.
const CodePrefix = "RES-"

// GenerateCode builds a shareable booking reference like "RES-7K2Q9A".
// Pass a seeded *rand.Rand for deterministic output; nil falls back to
// the global source. Uniqueness is not guaranteed here; the reservations
// table carries a unique key on code and a collision surfaces as a
// storage error.
func GenerateCode(rng *rand.Rand) string {
	pick := rand.Intn
	if rng != nil {
		pick = rng.Intn
	}
	buf := make([]byte, 0, len(CodePrefix)+CodeLength)
	buf = append(buf, CodePrefix...)
	for i := 0; i < CodeLength; i++ {
		buf = append(buf, codeAlphabet[pick(len(codeAlphabet))])
	}
	return string(buf)
}
