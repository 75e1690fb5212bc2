package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{1000, "0:01"},
		{59999, "0:59"},
		{65000, "1:05"},
		{600000, "10:00"},
		{3600000, "60:00"},
		{-5, "0:00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatTime(c.ms), "FormatTime(%d)", c.ms)
	}
}
