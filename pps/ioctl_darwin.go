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

//go:build darwin

package pps

import (
	"golang.org/x/sys/unix"
)

// stubIoctler is compiled on platforms without a kernel PPS subsystem.
// Every control operation fails with ENOTSUP.
type stubIoctler struct{}

func newIoctler() Ioctler {
	return stubIoctler{}
}

func (stubIoctler) Create(_ uintptr) error {
	return nil
}

func (stubIoctler) Destroy(_ uintptr) error {
	return nil
}

func (stubIoctler) GetParams(_ uintptr) (Params, error) {
	return Params{}, unix.ENOTSUP
}

func (stubIoctler) SetParams(_ uintptr, _, _ TimeU, _ APIVersion, _ Mode) error {
	return unix.ENOTSUP
}

func (stubIoctler) GetCap(_ uintptr) (CapabilityMap, error) {
	return nil, unix.ENOTSUP
}

func (stubIoctler) Fetch(_ uintptr, _ unix.Timespec) (Info, error) {
	return Info{}, unix.ENOTSUP
}
