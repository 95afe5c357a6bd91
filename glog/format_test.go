// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"testing"
	"time"
)

var testTime = time.Date(2021, time.April, 1, 12, 34, 56, 987654321, time.UTC)

func TestAppendLine(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		rec   Record
		want  string
	}{
		{
			name: "basic",
			rec:  Record{Severity: Info, Time: testTime, PID: 123, File: "readme.rs", Line: 6, Message: "It works!"},
			want: "I0401 12:34:56.987654   123 readme.rs:6] It works!\n",
		},
		{
			name:  "with year",
			flags: Flags{WithYear: true},
			rec:   Record{Severity: Info, Time: testTime, PID: 123, File: "readme.rs", Line: 11, Message: "With the year"},
			want:  "I20210401 12:34:56.987654   123 readme.rs:11] With the year\n",
		},
		{
			name: "full path",
			rec:  Record{Severity: Warning, Time: testTime, PID: 7, File: "/home/user/src/server/main.go", Line: 42, Message: "slow"},
			want: "W0401 12:34:56.987654     7 main.go:42] slow\n",
		},
		{
			name: "wide pid",
			rec:  Record{Severity: Error, Time: testTime, PID: 4194304, File: "a.go", Line: 1, Message: "x"},
			want: "E0401 12:34:56.987654 4194304 a.go:1] x\n",
		},
		{
			name: "zero and negative lines",
			rec:  Record{Severity: Fatal, Time: testTime, PID: 1, File: "a.go", Line: -3, Message: "neg"},
			want: "F0401 12:34:56.987654     1 a.go:-3] neg\n",
		},
		{
			name: "line zero",
			rec:  Record{Severity: Info, Time: testTime, PID: 1, File: "a.go", Line: 0, Message: "zero"},
			want: "I0401 12:34:56.987654     1 a.go:0] zero\n",
		},
		{
			name: "trailing newline",
			rec:  Record{Severity: Info, Time: testTime, PID: 1, File: "a.go", Line: 2, Message: "done\n"},
			want: "I0401 12:34:56.987654     1 a.go:2] done\n",
		},
		{
			name: "multi line",
			rec:  Record{Severity: Info, Time: testTime, PID: 1, File: "a.go", Line: 2, Message: "one\ntwo"},
			want: "I0401 12:34:56.987654     1 a.go:2] one\ntwo\n",
		},
		{
			name: "empty message",
			rec:  Record{Severity: Info, Time: testTime, PID: 1, File: "a.go", Line: 2},
			want: "I0401 12:34:56.987654     1 a.go:2] \n",
		},
		{
			name: "invalid utf8",
			rec:  Record{Severity: Info, Time: testTime, PID: 1, File: "a.go", Line: 2, Message: "bad \xff\xfe bytes"},
			want: "I0401 12:34:56.987654     1 a.go:2] bad \xff\xfe bytes\n",
		},
		{
			name: "missing file",
			rec:  Record{Severity: Info, Time: testTime, PID: 1, Line: 2, Message: "m"},
			want: "I0401 12:34:56.987654     1 ???:2] m\n",
		},
		{
			name: "folded trace",
			rec:  Record{Severity: Trace, Time: testTime, PID: 1, File: "a.go", Line: 2, Message: "t"},
			want: "I0401 12:34:56.987654     1 a.go:2] t\n",
		},
		{
			name:  "extended debug",
			flags: Flags{ExtendedSeverities: true},
			rec:   Record{Severity: Debug, Time: testTime, PID: 1, File: "a.go", Line: 2, Message: "d"},
			want:  "D0401 12:34:56.987654     1 a.go:2] d\n",
		},
		{
			name:  "thread id",
			flags: Flags{LogThreadID: true},
			rec:   Record{Severity: Info, Time: testTime, PID: 1, TID: 98765, File: "a.go", Line: 2, Message: "m"},
			want:  "I0401 12:34:56.987654 98765 a.go:2] m\n",
		},
		{
			name: "padded clock",
			rec:  Record{Severity: Info, Time: time.Date(2021, time.January, 2, 3, 4, 5, 6000, time.UTC), PID: 1, File: "a.go", Line: 2, Message: "m"},
			want: "I0102 03:04:05.000006     1 a.go:2] m\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := string(AppendLine(nil, &test.rec, &test.flags))
			if got != test.want {
				t.Fatalf("got %q, want %q", got, test.want)
			}
			// Same inputs must render the same bytes.
			if again := string(AppendLine([]byte("prefix:"), &test.rec, &test.flags)); again != "prefix:"+test.want {
				t.Fatalf("second rendering differs: %q", again)
			}
		})
	}
}

func TestNDigits(t *testing.T) {
	tests := []struct {
		n    int
		d    int
		pad  byte
		want string
	}{
		{5, 123, ' ', "  123"},
		{5, 0, ' ', "    0"},
		{6, 42, '0', "000042"},
		{4, 2021, '0', "2021"},
		{2, 12345, ' ', "12345"},
		{5, -12, ' ', "  -12"},
	}
	for _, test := range tests {
		if got := string(nDigits(nil, test.n, test.d, test.pad)); got != test.want {
			t.Errorf("nDigits(%d, %d, %q) = %q, want %q", test.n, test.d, test.pad, got, test.want)
		}
	}
}
