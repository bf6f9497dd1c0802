/*
Copyright (c) The pps-tools authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pps

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

const nsPerSec = 1000000000

// ntpUnixOffset is the number of seconds between the NTP epoch
// (1900-01-01) and the Unix epoch (1970-01-01).
const ntpUnixOffset = 2208988800

// TimeU is a PPS timestamp in one of the two wire encodings: a signed
// duration (TimeSpec) or an NTP 64-bit fixed point value (NTPFP).
// Which encoding is valid in a transported record is decided solely by
// the timestamp-format bit of the governing Mode, not by the Go type.
type TimeU interface {
	// Timespec returns the duration form of the value.
	Timespec() unix.Timespec
}

// TimeSpec is the duration form of a PPS timestamp: seconds plus
// nanoseconds. The zero value is the default TimeU.
type TimeSpec struct {
	Sec  int64
	Nsec int64
}

// FromDuration converts d to its TimeSpec form.
func FromDuration(d time.Duration) TimeSpec {
	return TimeSpec{
		Sec:  int64(d / time.Second),
		Nsec: int64(d % time.Second),
	}
}

// Timespec implements TimeU.
func (t TimeSpec) Timespec() unix.Timespec {
	return unix.Timespec{Sec: t.Sec, Nsec: t.Nsec}
}

// NTPFP is an NTP 64-bit fixed point timestamp: 32 bits of seconds since
// the NTP epoch plus 32 bits of fraction in units of 1/2^32 second.
type NTPFP struct {
	Integral   uint32
	Fractional uint32
}

// nanoseconds converts the fractional part to nanoseconds, truncating.
func (fp NTPFP) nanoseconds() int64 {
	return int64(fp.Fractional) * nsPerSec >> 32
}

// Timespec implements TimeU, rebasing the integral part from the NTP
// epoch to the Unix epoch.
func (fp NTPFP) Timespec() unix.Timespec {
	return unix.Timespec{
		Sec:  int64(fp.Integral) - ntpUnixOffset,
		Nsec: fp.nanoseconds(),
	}
}

// String renders the value in seconds with the minimal precision that
// round-trips: whole seconds, milliseconds, or full nanoseconds.
func (fp NTPFP) String() string {
	nsec := fp.nanoseconds()
	switch {
	case nsec == 0:
		if fp.Integral == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", fp.Integral)
	case nsec%1000000 == 0:
		return fmt.Sprintf("%d.%03d seconds", fp.Integral, nsec/1000000)
	default:
		return fmt.Sprintf("%d.%09d seconds", fp.Integral, nsec)
	}
}
