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

// ModeBit is one named capability/mode flag of a PPS source.
type ModeBit int32

// Mode bits as defined in Linux include/uapi/linux/pps.h
const (
	// capture events
	CaptureAssert ModeBit = 0x01
	CaptureClear  ModeBit = 0x02
	CaptureBoth   ModeBit = 0x03
	// offsets applied to captured timestamps
	OffsetAssert ModeBit = 0x10
	OffsetClear  ModeBit = 0x20
	// kernel actions on capture
	EchoAssert ModeBit = 0x40
	EchoClear  ModeBit = 0x80
	// supported wait styles
	CanWait ModeBit = 0x100
	CanPoll ModeBit = 0x200
	// timestamp wire formats
	TsFmtTSpec ModeBit = 0x1000
	TsFmtNTPFP ModeBit = 0x2000
)

// AllModeBits lists every defined mode bit exactly once.
var AllModeBits = []ModeBit{
	CaptureAssert,
	CaptureClear,
	CaptureBoth,
	OffsetAssert,
	OffsetClear,
	EchoAssert,
	EchoClear,
	CanWait,
	CanPoll,
	TsFmtTSpec,
	TsFmtNTPFP,
}

func (b ModeBit) String() string {
	switch b {
	case CaptureAssert:
		return "PPS_CAPTUREASSERT"
	case CaptureClear:
		return "PPS_CAPTURECLEAR"
	case CaptureBoth:
		return "PPS_CAPTUREBOTH"
	case OffsetAssert:
		return "PPS_OFFSETASSERT"
	case OffsetClear:
		return "PPS_OFFSETCLEAR"
	case EchoAssert:
		return "PPS_ECHOASSERT"
	case EchoClear:
		return "PPS_ECHOCLEAR"
	case CanWait:
		return "PPS_CANWAIT"
	case CanPoll:
		return "PPS_CANPOLL"
	case TsFmtTSpec:
		return "PPS_TSFMT_TSPEC"
	case TsFmtNTPFP:
		return "PPS_TSFMT_NTPFP"
	}
	return "PPS_UNKNOWN"
}

// Mode is a bitmask of ModeBit values describing the configuration or
// capabilities of a PPS source.
type Mode int32

// IsSet reports whether bit is present in the mask.
func (m Mode) IsSet(bit ModeBit) bool {
	return int32(m)&int32(bit) > 0
}

// Bits enumerates every defined mode bit with its set/unset state.
func (m Mode) Bits() CapabilityMap {
	bits := make(CapabilityMap, len(AllModeBits))
	for _, bit := range AllModeBits {
		bits[bit] = m.IsSet(bit)
	}
	return bits
}

// ModeBuilder accumulates mode bits for a Mode. The zero value is ready
// to use.
type ModeBuilder struct {
	mode int32
}

// NewModeBuilder returns an empty builder.
func NewModeBuilder() *ModeBuilder {
	return &ModeBuilder{}
}

// Add sets bit in the accumulated mask.
func (b *ModeBuilder) Add(bit ModeBit) *ModeBuilder {
	b.mode |= int32(bit)
	return b
}

// Remove clears bit from the accumulated mask.
func (b *ModeBuilder) Remove(bit ModeBit) *ModeBuilder {
	b.mode &^= int32(bit)
	return b
}

// Build produces the accumulated Mode.
func (b *ModeBuilder) Build() Mode {
	return Mode(b.mode)
}
