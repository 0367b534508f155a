package random

import (
	"crypto/rand"
	"math/big"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GetNowAndLenRandomString generates a date-prefixed random string,
// used as the body of entity UUIDs (U.../G.../I.../F.../N...).
// Format: YYMMDD followed by length random alphanumerics.
func GetNowAndLenRandomString(length int) string {
	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = charset[n.Int64()]
	}
	return time.Now().Format("060102") + string(result)
}

// GetRandomInt generates a random integer in [1, max].
func GetRandomInt(max int) int {
	if max <= 0 {
		return 1
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 1
	}
	return int(n.Int64()) + 1
}
