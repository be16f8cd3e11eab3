package pkg

import (
	"fmt"
	"math/rand"
)

const refCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenRefCode returns a short opaque base36 code for referral deep links.
func GenRefCode() string {
	code := make([]byte, 7)
	for i := range code {
		code[i] = refCodeAlphabet[rand.Intn(len(refCodeAlphabet))]
	}
	return string(code)
}

// FormatCountdown renders seconds as [hh:]mm:ss.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
