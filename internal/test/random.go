package test

import "math/rand"

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomUsername returns an alphanumeric username with a length in
// [minLen, maxLen]. Bounds below one or inverted are clamped.
func RandomUsername(minLen, maxLen int) string {
	return randomString(alphanumeric, minLen, maxLen)
}

// RandomPassword returns a password with a length in [minLen, maxLen] that
// also contains punctuation.
func RandomPassword(minLen, maxLen int) string {
	return randomString(alphanumeric+"!#$%&*+-.:=?@_~", minLen, maxLen)
}

func randomString(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.Intn(maxLen-minLen+1))
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(buf)
}
