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
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// APIVersion is the PPS API version negotiated with the kernel.
type APIVersion int32

// DefaultAPIVersion is PPS API version 1, the only version Linux speaks.
const DefaultAPIVersion APIVersion = 1

// Params is the negotiated capture configuration of a PPS source.
// The timestamp-format bit of Mode governs which TimeU encoding the
// offsets carry on the wire.
type Params struct {
	APIVersion   APIVersion
	Mode         Mode
	AssertOffset TimeU
	ClearOffset  TimeU
}

// Info is one fetched capture event snapshot.
type Info struct {
	AssertSequence uint64
	ClearSequence  uint64
	AssertTime     TimeU
	ClearTime      TimeU
	Mode           Mode
}

// CapabilityMap maps every defined mode bit to whether the source
// supports it.
type CapabilityMap map[ModeBit]bool

// Ioctler is the control-operation backend a target OS must provide.
// Exactly one implementation is compiled per GOOS. Operations issue a
// single syscall attempt and map a failing result to the wrapped errno;
// retry policy, if any, belongs to the caller.
type Ioctler interface {
	// Create registers the source with the kernel PPS subsystem.
	// Platforms that register sources automatically on open make this
	// a no-op returning nil.
	Create(fd uintptr) error
	// Destroy unregisters the source; a no-op where unsupported.
	Destroy(fd uintptr) error
	// GetParams reads the source's current capture parameters.
	GetParams(fd uintptr) (Params, error)
	// SetParams writes new capture parameters. The caller should pass
	// TimeU variants consistent with the timestamp-format bit of mode;
	// see the backend documentation for how mismatches are packed.
	SetParams(fd uintptr, assertOffset, clearOffset TimeU, version APIVersion, mode Mode) error
	// GetCap reports the mode bits the source supports.
	GetCap(fd uintptr) (CapabilityMap, error)
	// Fetch blocks until an edge event or until timeout elapses.
	// A zero timespec means wait indefinitely.
	Fetch(fd uintptr, timeout unix.Timespec) (Info, error)
}

//go:generate mockgen -destination mock_ioctler_test.go -package pps github.com/donicrosby/pps-tools/pps Ioctler

// Device is a handle on one open PPS source. It exclusively owns the
// underlying descriptor; concurrent use from multiple goroutines needs
// external synchronization.
type Device struct {
	f      *os.File
	ioc    Ioctler
	closed bool
}

// Open opens the PPS device at path read-write and registers it with
// the kernel. On any failure no handle is produced and no resource is
// left open.
func Open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening device %q: %w", path, err)
	}
	return FromFile(f)
}

// FromFile adopts an already-open device descriptor. Ownership of f
// transfers to the Device, which closes it on failure and on Close.
func FromFile(f *os.File) (*Device, error) {
	return fromFile(f, newIoctler())
}

func fromFile(f *os.File, ioc Ioctler) (*Device, error) {
	dev := &Device{f: f, ioc: ioc}
	if err := ioc.Create(f.Fd()); err != nil {
		f.Close()
		return nil, fmt.Errorf("registering PPS source %q: %w", f.Name(), err)
	}
	log.Debugf("opened PPS source %q", f.Name())
	return dev, nil
}

// File returns the underlying device file.
func (dev *Device) File() *os.File {
	return dev.f
}

// GetParams returns the source's current capture parameters.
func (dev *Device) GetParams() (Params, error) {
	return dev.ioc.GetParams(dev.f.Fd())
}

// SetParams writes new capture parameters to the source. Nil offsets
// are treated as the default zero TimeSpec.
func (dev *Device) SetParams(p Params) error {
	assertOff := p.AssertOffset
	if assertOff == nil {
		assertOff = TimeSpec{}
	}
	clearOff := p.ClearOffset
	if clearOff == nil {
		clearOff = TimeSpec{}
	}
	return dev.ioc.SetParams(dev.f.Fd(), assertOff, clearOff, p.APIVersion, p.Mode)
}

// GetCap reports which mode bits the source supports.
func (dev *Device) GetCap() (CapabilityMap, error) {
	return dev.ioc.GetCap(dev.f.Fd())
}

// Fetch blocks until the next pulse edge or until timeout elapses,
// whichever comes first. A zero timeout waits indefinitely; there is no
// way to cancel a blocked fetch from this layer.
func (dev *Device) Fetch(timeout time.Duration) (Info, error) {
	var ts unix.Timespec
	if timeout > 0 {
		ts = unix.NsecToTimespec(timeout.Nanoseconds())
	}
	return dev.ioc.Fetch(dev.f.Fd(), ts)
}

// Close unregisters the source and releases the descriptor. Unregister
// failures are discarded: releasing a handle is best-effort by contract
// and never reports a backend error. Close is idempotent.
func (dev *Device) Close() error {
	if dev.closed {
		return nil
	}
	dev.closed = true
	if err := dev.ioc.Destroy(dev.f.Fd()); err != nil {
		log.Debugf("unregistering PPS source %q: %v", dev.f.Name(), err)
	}
	return dev.f.Close()
}
