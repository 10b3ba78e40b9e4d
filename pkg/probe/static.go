// Copyright 2025 Alibaba Group Holding Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package probe

import "time"

// VolumeUsage is a canned disk-space answer for one volume root.
type VolumeUsage struct {
	Total uint64
	Free  uint64
	Err   error
}

// Static is a SystemProbe backed by fixed values. It exists so tests of
// the collectors and HTTP handlers run without touching the OS or paying
// the sampling settle delays.
type Static struct {
	Physical int
	Logical  int

	Usage    float64
	UsageErr error

	BaseFreqMHz uint64
	BaseFreqErr error

	CurrentFreqMHz uint64
	CurrentFreqErr error

	MemTotal     uint64
	MemAvailable uint64
	MemErr       error

	Volumes map[string]VolumeUsage

	Identity    Identity
	IdentityErr error

	Counters    []NetCounters
	CountersErr error
}

var _ SystemProbe = (*Static)(nil)

func (s *Static) CPUCounts() (int, int) {
	return s.Physical, s.Logical
}

func (s *Static) CPUUsage(time.Duration) (float64, error) {
	if s.UsageErr != nil {
		return 0, s.UsageErr
	}
	return s.Usage, nil
}

func (s *Static) BaseFrequency() (uint64, error) {
	if s.BaseFreqErr != nil {
		return 0, s.BaseFreqErr
	}
	return s.BaseFreqMHz, nil
}

func (s *Static) CurrentFrequency() (uint64, error) {
	if s.CurrentFreqErr != nil {
		return 0, s.CurrentFreqErr
	}
	return s.CurrentFreqMHz, nil
}

func (s *Static) Memory() (uint64, uint64, error) {
	if s.MemErr != nil {
		return 0, 0, s.MemErr
	}
	return s.MemTotal, s.MemAvailable, nil
}

func (s *Static) DiskUsage(path string) (uint64, uint64, error) {
	usage, ok := s.Volumes[path]
	if !ok {
		return 0, 0, &noVolumeError{path: path}
	}
	if usage.Err != nil {
		return 0, 0, usage.Err
	}
	return usage.Total, usage.Free, nil
}

func (s *Static) Host() (Identity, error) {
	if s.IdentityErr != nil {
		return Identity{}, s.IdentityErr
	}
	return s.Identity, nil
}

func (s *Static) NetCounters() ([]NetCounters, error) {
	if s.CountersErr != nil {
		return nil, s.CountersErr
	}
	return s.Counters, nil
}

type noVolumeError struct {
	path string
}

func (e *noVolumeError) Error() string {
	return "no such volume: " + e.path
}
