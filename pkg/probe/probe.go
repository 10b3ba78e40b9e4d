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

// Package probe isolates every platform query behind the SystemProbe
// interface so the collectors and the HTTP layer stay portable. The
// production implementation is backed by gopsutil; the live-frequency
// counter is the only call with a per-platform source file.
package probe

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	psnet "github.com/shirou/gopsutil/net"
)

// Identity describes the host operating system.
type Identity struct {
	OS            string
	PrettyName    string
	KernelVersion string
}

// NetCounters holds per-interface traffic counters.
type NetCounters struct {
	Name        string
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
	ErrIn       uint64
	ErrOut      uint64
	DropIn      uint64
	DropOut     uint64
	FifoIn      uint64
	FifoOut     uint64
}

// SystemProbe is the capability interface over the operating system.
// Every call constructs fresh query state; implementations hold no
// cross-request handles.
type SystemProbe interface {
	// CPUCounts returns the physical and logical core counts. A count the
	// platform cannot report comes back as 0 (physical) or the scheduler
	// view (logical).
	CPUCounts() (physical, logical int)

	// CPUUsage samples aggregate CPU load twice, separated by the settle
	// delay, and returns the usage fraction in [0,1] from the second sample.
	CPUUsage(settle time.Duration) (float64, error)

	// BaseFrequency returns the maximum rated per-core frequency in MHz.
	BaseFrequency() (uint64, error)

	// CurrentFrequency returns the live CPU clock in MHz via a platform
	// performance counter. Expected to fail on platforms without one.
	CurrentFrequency() (uint64, error)

	// Memory returns total and available physical memory in bytes.
	Memory() (total, available uint64, err error)

	// DiskUsage returns total and free capacity in bytes for one volume root.
	DiskUsage(path string) (total, free uint64, err error)

	// Host reads the platform identification strings. Missing values are
	// empty, not errors.
	Host() (Identity, error)

	// NetCounters enumerates network interfaces with their counters.
	NetCounters() ([]NetCounters, error)
}

type systemProbe struct{}

// New returns the gopsutil-backed SystemProbe.
func New() SystemProbe {
	return systemProbe{}
}

func (systemProbe) CPUCounts() (int, int) {
	physical, err := cpu.Counts(false)
	if err != nil {
		physical = 0
	}
	logical, err := cpu.Counts(true)
	if err != nil {
		logical = runtime.NumCPU()
	}
	return physical, logical
}

func (systemProbe) CPUUsage(settle time.Duration) (float64, error) {
	percents, err := cpu.Percent(settle, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, nil
	}
	return percents[0] / 100, nil
}

func (systemProbe) BaseFrequency() (uint64, error) {
	infos, err := cpu.Info()
	if err != nil {
		return 0, err
	}
	var max float64
	for _, info := range infos {
		if info.Mhz > max {
			max = info.Mhz
		}
	}
	return uint64(max), nil
}

func (systemProbe) Memory() (uint64, uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Available, nil
}

func (systemProbe) DiskUsage(path string) (uint64, uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, 0, err
	}
	return usage.Total, usage.Free, nil
}

func (systemProbe) Host() (Identity, error) {
	info, err := host.Info()
	if err != nil {
		return Identity{}, err
	}
	pretty := info.Platform
	if info.PlatformVersion != "" {
		pretty = pretty + " " + info.PlatformVersion
	}
	return Identity{
		OS:            info.OS,
		PrettyName:    pretty,
		KernelVersion: info.KernelVersion,
	}, nil
}

func (systemProbe) NetCounters() ([]NetCounters, error) {
	stats, err := psnet.IOCounters(true)
	if err != nil {
		return nil, err
	}
	counters := make([]NetCounters, 0, len(stats))
	for _, stat := range stats {
		counters = append(counters, NetCounters{
			Name:        stat.Name,
			BytesSent:   stat.BytesSent,
			BytesRecv:   stat.BytesRecv,
			PacketsSent: stat.PacketsSent,
			PacketsRecv: stat.PacketsRecv,
			ErrIn:       stat.Errin,
			ErrOut:      stat.Errout,
			DropIn:      stat.Dropin,
			DropOut:     stat.Dropout,
			FifoIn:      stat.Fifoin,
			FifoOut:     stat.Fifoout,
		})
	}
	return counters, nil
}
