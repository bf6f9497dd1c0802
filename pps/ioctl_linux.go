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

//go:build linux

package pps

import (
	"fmt"
	"unsafe"

	"github.com/vtolstov/go-ioctl"
	"golang.org/x/sys/unix"
)

// Defined in Linux include/uapi/linux/pps.h
const (
	ppsMagic = 'p'
	// PPS_TIME_INVALID: in a fetch timeout it tells the kernel to wait
	// indefinitely.
	ppsTimeInvalid = 0x1
)

// The four PPS control operations. linux/pps.h declares every request
// with a pointer-typed argument, e.g. _IOR('p', 0xa1, struct
// pps_kparams *), so the encoded size field is the pointer width, not
// the struct size. The kernel dispatches on the exact value.
var (
	iocGetParams = ioctl.IOR(ppsMagic, 0xa1, unsafe.Sizeof(uintptr(0)))
	iocSetParams = ioctl.IOW(ppsMagic, 0xa2, unsafe.Sizeof(uintptr(0)))
	iocGetCap    = ioctl.IOR(ppsMagic, 0xa3, unsafe.Sizeof(uintptr(0)))
	iocFetch     = ioctl.IOWR(ppsMagic, 0xa4, unsafe.Sizeof(uintptr(0)))
)

// rawKtime is struct pps_ktime as defined in linux/pps.h. It doubles as
// the 16-byte timestamp union from the same header: the ntp_fp member
// aliases the leading bytes and is read through ntpfp().
type rawKtime struct {
	Sec   int64
	Nsec  int32
	Flags uint32
}

// rawNTPFP is struct ntp_fp as defined in linux/pps.h.
type rawNTPFP struct {
	Integral   uint32
	Fractional uint32
}

// ntpfp reinterprets the union bytes as the ntp_fp member. This is the
// only place union memory is reinterpreted.
func (t *rawKtime) ntpfp() rawNTPFP {
	return *(*rawNTPFP)(unsafe.Pointer(t))
}

// rawParams is struct pps_kparams as defined in linux/pps.h.
type rawParams struct {
	APIVersion  int32
	Mode        int32
	AssertOffTu rawKtime
	ClearOffTu  rawKtime
}

// rawInfo is struct pps_kinfo as defined in linux/pps.h.
type rawInfo struct {
	AssertSequence uint32
	ClearSequence  uint32
	AssertTu       rawKtime
	ClearTu        rawKtime
	CurrentMode    int32
}

// rawFetchArgs is struct pps_fdata as defined in linux/pps.h.
type rawFetchArgs struct {
	Info    rawInfo
	Timeout rawKtime
}

// timeUFromRaw decodes one timestamp union member. The timestamp-format
// bit of mode is the sole authority on which member is valid: the
// ntp_fp view when PPS_TSFMT_NTPFP is set, the timespec view otherwise
// (the kernel's default wire format).
func timeUFromRaw(mode Mode, tu rawKtime) TimeU {
	if mode.IsSet(TsFmtNTPFP) {
		fp := tu.ntpfp()
		return NTPFP{Integral: fp.Integral, Fractional: fp.Fractional}
	}
	return TimeSpec{Sec: tu.Sec, Nsec: int64(tu.Nsec)}
}

// ktimeFromTimeU packs an outbound timestamp through its duration form,
// whichever TimeU variant the caller supplied. The Linux kernel only
// populates and consumes the tspec union member (drivers/pps/pps.c), so
// fixed-point offsets are stored via their timespec equivalent.
func ktimeFromTimeU(tu TimeU) rawKtime {
	if tu == nil {
		return rawKtime{}
	}
	ts := tu.Timespec()
	return rawKtime{Sec: int64(ts.Sec), Nsec: int32(ts.Nsec)}
}

func (p *rawParams) params() Params {
	mode := Mode(p.Mode)
	return Params{
		APIVersion:   APIVersion(p.APIVersion),
		Mode:         mode,
		AssertOffset: timeUFromRaw(mode, p.AssertOffTu),
		ClearOffset:  timeUFromRaw(mode, p.ClearOffTu),
	}
}

func (i *rawInfo) info() Info {
	mode := Mode(i.CurrentMode)
	return Info{
		AssertSequence: uint64(i.AssertSequence),
		ClearSequence:  uint64(i.ClearSequence),
		AssertTime:     timeUFromRaw(mode, i.AssertTu),
		ClearTime:      timeUFromRaw(mode, i.ClearTu),
		Mode:           mode,
	}
}

// fetchTimeout encodes the caller's timeout for the fetch operation. A
// zero timespec maps to a ktime with PPS_TIME_INVALID set, which the
// kernel treats as "wait indefinitely".
func fetchTimeout(ts unix.Timespec) rawKtime {
	if ts.Sec == 0 && ts.Nsec == 0 {
		return rawKtime{Flags: ppsTimeInvalid}
	}
	return rawKtime{Sec: int64(ts.Sec), Nsec: int32(ts.Nsec)}
}

func doIoctl(fd, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// linuxIoctler issues the PPS control operations against the Linux
// kernel PPS subsystem.
type linuxIoctler struct{}

func newIoctler() Ioctler {
	return linuxIoctler{}
}

// Create is a no-op: Linux registers PPS sources when the device node
// appears.
func (linuxIoctler) Create(_ uintptr) error {
	return nil
}

// Destroy is a no-op: Linux unregisters PPS sources on device removal.
func (linuxIoctler) Destroy(_ uintptr) error {
	return nil
}

func (linuxIoctler) GetParams(fd uintptr) (Params, error) {
	var raw rawParams
	if err := doIoctl(fd, iocGetParams, unsafe.Pointer(&raw)); err != nil {
		return Params{}, fmt.Errorf("PPS_GETPARAMS: %w", err)
	}
	return raw.params(), nil
}

func (linuxIoctler) SetParams(fd uintptr, assertOffset, clearOffset TimeU, version APIVersion, mode Mode) error {
	raw := rawParams{
		APIVersion:  int32(version),
		Mode:        int32(mode),
		AssertOffTu: ktimeFromTimeU(assertOffset),
		ClearOffTu:  ktimeFromTimeU(clearOffset),
	}
	if err := doIoctl(fd, iocSetParams, unsafe.Pointer(&raw)); err != nil {
		return fmt.Errorf("PPS_SETPARAMS: %w", err)
	}
	return nil
}

func (linuxIoctler) GetCap(fd uintptr) (CapabilityMap, error) {
	var caps int32
	if err := doIoctl(fd, iocGetCap, unsafe.Pointer(&caps)); err != nil {
		return nil, fmt.Errorf("PPS_GETCAP: %w", err)
	}
	return Mode(caps).Bits(), nil
}

func (linuxIoctler) Fetch(fd uintptr, timeout unix.Timespec) (Info, error) {
	args := rawFetchArgs{Timeout: fetchTimeout(timeout)}
	if err := doIoctl(fd, iocFetch, unsafe.Pointer(&args)); err != nil {
		return Info{}, fmt.Errorf("PPS_FETCH: %w", err)
	}
	return args.Info.info(), nil
}
