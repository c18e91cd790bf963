package voucher

import (
	"crypto/rand"
	"fmt"
	"time"
)

// CodePrefix is the constant human-readable prefix of every voucher code
const CodePrefix = "SFW"

// SuffixLength is the length of the random code suffix. 36^6 ≈ 2.2
// billion combinations, so collisions are operationally negligible; the
// unique index on the code column is the safety net.
const SuffixLength = 6

// Uppercase alphanumeric alphabet (36 characters: A-Z, 0-9)
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode produces a voucher code of the fixed scheme
// PREFIX-YYYY-XXXXXX, where YYYY is the generation year and XXXXXX is an
// uppercase alphanumeric suffix from crypto/rand.
func GenerateCode(now time.Time) (string, error) {
	suffix, err := randomSuffix(SuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s", CodePrefix, now.Year(), suffix), nil
}

func randomSuffix(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid suffix length: %d", length)
	}

	// Rejection sampling to avoid modulo bias.
	// 252 is the largest multiple of 36 below 256.
	const maxRandomByte = 252

	suffix := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			suffix[written] = codeAlphabet[int(b)%len(codeAlphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(suffix), nil
}
