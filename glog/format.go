// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"strconv"
)

// AppendLine renders the record in glog's line format and appends it to dst.
// Format is
//
//	Lmmdd hh:mm:ss.uuuuuu ppppp file:line] msg
//
// where L is the severity code. With the year flag the date is yyyymmdd
// instead. The line always ends in exactly one newline.
func AppendLine(dst []byte, r *Record, f *Flags) []byte {
	// Avoid Fprintf, for speed. The format is so simple that we can do it
	// quickly by hand.
	dst = append(dst, r.Severity.fold(f.ExtendedSeverities).Char())

	year, month, day := r.Time.Date()
	hour, minute, second := r.Time.Clock()
	if f.WithYear {
		dst = nDigits(dst, 4, year, '0')
	}
	dst = twoDigits(dst, int(month))
	dst = twoDigits(dst, day)
	dst = append(dst, ' ')
	dst = twoDigits(dst, hour)
	dst = append(dst, ':')
	dst = twoDigits(dst, minute)
	dst = append(dst, ':')
	dst = twoDigits(dst, second)
	dst = append(dst, '.')
	dst = nDigits(dst, 6, r.Time.Nanosecond()/1000, '0')
	dst = append(dst, ' ')

	id := r.PID
	if f.LogThreadID {
		id = r.TID
	}
	dst = nDigits(dst, 5, id, ' ')
	dst = append(dst, ' ')

	file, line := r.location()
	dst = append(dst, file...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(line), 10)
	dst = append(dst, "] "...)

	dst = append(dst, r.Message...)
	if len(r.Message) == 0 || r.Message[len(r.Message)-1] != '\n' {
		dst = append(dst, '\n')
	}
	return dst
}

const digits = "0123456789"

// twoDigits appends a zero-prefixed two-digit integer to dst.
func twoDigits(dst []byte, d int) []byte {
	return append(dst, digits[(d/10)%10], digits[d%10])
}

// nDigits appends d padded on the left with pad to at least n characters.
// Values wider than n are appended in full and negative values keep their
// sign.
func nDigits(dst []byte, n int, d int, pad byte) []byte {
	var tmp [24]byte
	j := len(tmp)
	neg := d < 0
	u := uint64(d)
	if neg {
		u = -u
	}
	for {
		j--
		tmp[j] = digits[u%10]
		u /= 10
		if u == 0 {
			break
		}
	}
	if neg {
		j--
		tmp[j] = '-'
	}
	for w := len(tmp) - j; w < n; w++ {
		dst = append(dst, pad)
	}
	return append(dst, tmp[j:]...)
}
