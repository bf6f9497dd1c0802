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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeSpecDefault(t *testing.T) {
	var tu TimeU = TimeSpec{}
	ts := tu.Timespec()
	require.Equal(t, int64(0), ts.Sec)
	require.Equal(t, int64(0), ts.Nsec)
}

func TestFromDuration(t *testing.T) {
	ts := FromDuration(2500 * time.Millisecond)
	require.Equal(t, TimeSpec{Sec: 2, Nsec: 500000000}, ts)
	require.Equal(t, TimeSpec{}, FromDuration(0))
}

func TestNTPFPTimespecExactWholeSecond(t *testing.T) {
	fp := NTPFP{Integral: ntpUnixOffset + 42, Fractional: 0}
	ts := fp.Timespec()
	require.Equal(t, int64(42), ts.Sec)
	require.Equal(t, int64(0), ts.Nsec)
}

func TestNTPFPTimespecFraction(t *testing.T) {
	fp := NTPFP{Integral: ntpUnixOffset, Fractional: 1 << 31}
	ts := fp.Timespec()
	require.Equal(t, int64(0), ts.Sec)
	require.Equal(t, int64(500000000), ts.Nsec)

	// truncating conversion: max fraction stays below one second
	fp = NTPFP{Integral: ntpUnixOffset, Fractional: 0xffffffff}
	require.Equal(t, int64(999999999), fp.Timespec().Nsec)
}

func TestNTPFPTimespecMonotonic(t *testing.T) {
	prev := NTPFP{Integral: ntpUnixOffset, Fractional: 0}.Timespec().Sec
	for _, integral := range []uint32{ntpUnixOffset + 1, ntpUnixOffset + 100, 0xffffffff} {
		cur := NTPFP{Integral: integral, Fractional: 0}.Timespec().Sec
		require.Greater(t, cur, prev)
		prev = cur
	}
}

func TestNTPFPString(t *testing.T) {
	require.Equal(t, "1 second", NTPFP{Integral: 1, Fractional: 0}.String())
	require.Equal(t, "5 seconds", NTPFP{Integral: 5, Fractional: 0}.String())
	require.Equal(t, "0 seconds", NTPFP{}.String())
	// half of 2^32 is exactly 500ms
	require.Equal(t, "7.500 seconds", NTPFP{Integral: 7, Fractional: 1 << 31}.String())
	// 4294968/2^32 is exactly 1ms
	require.Equal(t, "2.001 seconds", NTPFP{Integral: 2, Fractional: 4294968}.String())
	// not on a millisecond boundary: full nanosecond precision
	require.Equal(t, "3.123456788 seconds", NTPFP{Integral: 3, Fractional: 530242871}.String())
}
