package models

import (
	"fmt"
	"time"
)

// Balance is the remaining time owned by one user, kept in whole seconds.
type Balance struct {
	UserID    string
	Owner     string
	Seconds   int64
	UpdatedAt time.Time
}

func (b Balance) Remaining() time.Duration {
	return time.Duration(b.Seconds) * time.Second
}

func (b Balance) String() string {
	return b.Owner + ": " + FormatRemaining(b.Seconds)
}

// FormatRemaining renders seconds as HH:MM:SS. Hours are not capped at 24
// and negative values get a leading minus sign.
func FormatRemaining(seconds int64) string {
	sign := ""
	abs := uint64(seconds)
	if seconds < 0 {
		sign = "-"
		abs = uint64(-(seconds + 1)) + 1
	}
	h := abs / 3600
	m := abs % 3600 / 60
	s := abs % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}
