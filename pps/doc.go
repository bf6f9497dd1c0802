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

/*
Package pps provides typed access to kernel pulse-per-second (PPS) sources,
such as the /dev/ppsN character devices exposed by Linux for GPS receivers
and other hardware that timestamps periodic electrical edge events.

A Device wraps one open PPS source and exposes the RFC 2783 style API:
  - GetParams/SetParams negotiate capture parameters (which edges are
    captured, which offsets are applied, which timestamp format is used)
  - GetCap reports the mode bits the source actually supports
  - Fetch blocks until the next pulse edge and returns its timestamps

All kernel communication goes through the Ioctler contract; exactly one
concrete backend is compiled per target OS, so callers never see the raw
control-operation structures.
*/
package pps
