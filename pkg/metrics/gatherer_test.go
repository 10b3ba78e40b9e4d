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

package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alibaba/opensandbox/metricsd/pkg/probe"
	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

// healthyProbe answers every query successfully.
func healthyProbe() *probe.Static {
	return &probe.Static{
		Physical:       4,
		Logical:        8,
		Usage:          0.25,
		BaseFreqMHz:    3600,
		CurrentFreqMHz: 4200,
		MemTotal:       16 << 30,
		MemAvailable:   4 << 30,
		Volumes: map[string]probe.VolumeUsage{
			"/": {Total: 1000, Free: 400},
		},
		Identity: probe.Identity{
			OS:            "linux",
			PrettyName:    "Ubuntu 22.04",
			KernelVersion: "6.8.0-51-generic",
		},
		Counters: []probe.NetCounters{
			{Name: "lo", BytesSent: 128, BytesRecv: 128},
			{Name: "eth0", BytesSent: 1024, BytesRecv: 4096, DropIn: 2},
		},
	}
}

func newTestGatherer(p *probe.Static) *Gatherer {
	return NewGatherer(p, Config{DiskVolumes: []string{"/"}})
}

func TestCPUCollectorHealthy(t *testing.T) {
	var errs model.ErrorList
	snapshot := newTestGatherer(healthyProbe()).CPU(&errs)

	assert.Equal(t, 4, snapshot.PhysicalCore)
	assert.Equal(t, 8, snapshot.LogicalCore)
	assert.Equal(t, uint64(3600), snapshot.Frequency)
	if snapshot.CurrentFrequency == nil {
		t.Fatal("expected live frequency to be present")
	}
	assert.Equal(t, uint64(4200), *snapshot.CurrentFrequency)
	assert.Nil(t, snapshot.TemperatureC)
	assert.InDelta(t, 0.25, snapshot.UsagePercent, 1e-9)
	assert.InDelta(t, 0.75, snapshot.FreePercent, 1e-9)

	// Temperature is unconditionally degraded, even on a clean run.
	items := errs.Items()
	if len(items) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(items), items)
	}
	assert.Equal(t, []string{"cpu.temperature"}, items[0].Metric)
}

func TestCPUCollectorDegradesLiveFrequency(t *testing.T) {
	p := healthyProbe()
	p.CurrentFreqErr = errors.New("counter query failed")

	var errs model.ErrorList
	snapshot := newTestGatherer(p).CPU(&errs)

	assert.Nil(t, snapshot.CurrentFrequency)

	items := errs.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(items), items)
	}
	assert.Equal(t, []string{"cpu.current_frequency"}, items[0].Metric)
	assert.Equal(t, "counter query failed", items[0].Err)
	assert.Equal(t, []string{"cpu.temperature"}, items[1].Metric)
}

func TestMemoryCollectorInvariants(t *testing.T) {
	var errs model.ErrorList
	snapshot := newTestGatherer(healthyProbe()).Memory(&errs)

	assert.Equal(t, snapshot.TotalBytes-snapshot.AvailableBytes, snapshot.UsedBytes)
	assert.InDelta(t, float64(snapshot.UsedBytes)/float64(snapshot.TotalBytes), snapshot.UsagePercent, 1e-9)
	assert.Zero(t, errs.Len())
}

func TestMemoryCollectorSaturatesUsed(t *testing.T) {
	p := healthyProbe()
	p.MemTotal = 100
	p.MemAvailable = 150

	var errs model.ErrorList
	snapshot := newTestGatherer(p).Memory(&errs)

	assert.Equal(t, uint64(0), snapshot.UsedBytes)
	assert.Equal(t, 0.0, snapshot.UsagePercent)
}

func TestMemoryCollectorZeroTotalGuard(t *testing.T) {
	p := healthyProbe()
	p.MemTotal = 0
	p.MemAvailable = 0

	var errs model.ErrorList
	snapshot := newTestGatherer(p).Memory(&errs)

	// Must not be NaN.
	assert.Equal(t, 0.0, snapshot.UsagePercent)
}

func TestMemoryCollectorReadFailure(t *testing.T) {
	p := healthyProbe()
	p.MemErr = errors.New("vm stat failed")

	var errs model.ErrorList
	snapshot := newTestGatherer(p).Memory(&errs)

	assert.Equal(t, model.MemoryData{}, snapshot)
	items := errs.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 error, got %d", len(items))
	}
	assert.Equal(t, []string{"memory.virtual"}, items[0].Metric)
}

func TestDiskCollectorHealthy(t *testing.T) {
	var errs model.ErrorList
	disks := newTestGatherer(healthyProbe()).Disk(&errs)

	if len(disks) != 1 {
		t.Fatalf("expected 1 disk, got %d", len(disks))
	}
	d := disks[0]
	assert.Equal(t, "/", d.Device)
	assert.Equal(t, uint64(1000), *d.TotalBytes)
	assert.Equal(t, uint64(400), *d.FreeBytes)
	assert.Equal(t, uint64(600), *d.UsedBytes)
	assert.InDelta(t, 0.6, *d.UsagePercent, 1e-9)
	assert.Zero(t, errs.Len())
}

func TestDiskCollectorDropsFailedVolume(t *testing.T) {
	p := healthyProbe()
	g := NewGatherer(p, Config{DiskVolumes: []string{"/", "/missing"}})

	var errs model.ErrorList
	disks := g.Disk(&errs)

	if len(disks) != 1 {
		t.Fatalf("expected 1 disk, got %d", len(disks))
	}
	items := errs.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 error, got %d", len(items))
	}
	assert.Equal(t, []string{"disk.usage"}, items[0].Metric)
}

func TestDiskCollectorDropsZeroCapacityVolume(t *testing.T) {
	p := healthyProbe()
	p.Volumes["/"] = probe.VolumeUsage{Total: 0, Free: 0}

	var errs model.ErrorList
	disks := newTestGatherer(p).Disk(&errs)

	assert.Empty(t, disks)
	assert.Equal(t, 1, errs.Len())
}

func TestNetCollectorLiveCounters(t *testing.T) {
	var errs model.ErrorList
	nets := newTestGatherer(healthyProbe()).Net(&errs)

	if len(nets) != 2 {
		t.Fatalf("expected 2 interfaces, got %d", len(nets))
	}
	assert.Equal(t, "lo", nets[0].Name)
	assert.Equal(t, "eth0", nets[1].Name)
	assert.Equal(t, uint64(4096), nets[1].BytesRecv)
	assert.Equal(t, uint64(2), nets[1].DropIn)
	assert.Zero(t, errs.Len())
}

func TestNetCollectorGlobFilter(t *testing.T) {
	g := NewGatherer(healthyProbe(), Config{NetInterfaces: []string{"eth*"}})

	var errs model.ErrorList
	nets := g.Net(&errs)

	if len(nets) != 1 {
		t.Fatalf("expected 1 interface, got %d", len(nets))
	}
	assert.Equal(t, "eth0", nets[0].Name)
}

func TestNetCollectorFallbackStub(t *testing.T) {
	p := healthyProbe()
	p.CountersErr = errors.New("enumeration failed")

	var errs model.ErrorList
	nets := newTestGatherer(p).Net(&errs)

	assert.Equal(t, []model.NetData{{Name: "lo"}, {Name: "eth0"}}, nets)
	items := errs.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 error, got %d", len(items))
	}
	assert.Equal(t, []string{"net.io_counters"}, items[0].Metric)
}

func TestAllEnvelope(t *testing.T) {
	envelope := newTestGatherer(healthyProbe()).All()

	assert.Equal(t, "1.2.0", envelope.Capture.Version)
	assert.Equal(t, "debug", envelope.Capture.Mode)

	// Clean run: the only degraded metric is the temperature.
	if len(envelope.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(envelope.Errors), envelope.Errors)
	}
	assert.Equal(t, []string{"cpu.temperature"}, envelope.Errors[0].Metric)

	assert.Equal(t, "Ubuntu 22.04", envelope.Data.Host.PrettyName)
	assert.Len(t, envelope.Data.Disk, 1)
	assert.Len(t, envelope.Data.Net, 2)
}

func TestAllEnvelopeErrorOrder(t *testing.T) {
	p := healthyProbe()
	p.CurrentFreqErr = errors.New("counter query failed")
	p.CountersErr = errors.New("enumeration failed")
	g := NewGatherer(p, Config{DiskVolumes: []string{"/gone"}})

	envelope := g.All()

	var ids []string
	for _, e := range envelope.Errors {
		ids = append(ids, e.Metric[0])
	}
	assert.Equal(t, []string{
		"cpu.current_frequency",
		"cpu.temperature",
		"disk.usage",
		"net.io_counters",
	}, ids)
}
