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

// Package metrics holds the collectors. Each collector queries the probe
// synchronously on the calling goroutine, degrades failed sub-metrics to
// absent values and reports them through a shared ErrorList. A collector
// never returns an error to its caller.
package metrics

import (
	"github.com/alibaba/opensandbox/metricsd/pkg/probe"
	"github.com/alibaba/opensandbox/metricsd/pkg/version"
	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

// Config selects the collection targets.
type Config struct {
	// DiskVolumes are the volume roots queried by the disk collector.
	DiskVolumes []string

	// NetInterfaces are glob patterns matched against interface names.
	// Empty means every interface.
	NetInterfaces []string
}

// Gatherer runs the collectors against one SystemProbe.
type Gatherer struct {
	probe probe.SystemProbe
	cfg   Config
}

func NewGatherer(p probe.SystemProbe, cfg Config) *Gatherer {
	return &Gatherer{probe: p, cfg: cfg}
}

// All runs every collector and assembles the aggregated envelope. Errors
// appear in collection order: cpu, memory, disk, host, net.
//
// The CPU collector sleeps through two settle delays, so a call takes
// ≈370ms at minimum; that is the cost of rate-based sampling, not
// accidental latency.
func (g *Gatherer) All() model.AllMetrics {
	var errs model.ErrorList

	cpu := g.CPU(&errs)
	memory := g.Memory(&errs)
	disks := g.Disk(&errs)
	host := g.Host()
	nets := g.Net(&errs)

	return model.AllMetrics{
		Data: model.AllData{
			CPU:    cpu,
			Memory: memory,
			Disk:   disks,
			Host:   host,
			Net:    nets,
		},
		Capture: model.CaptureMeta{
			Version: version.Version,
			Mode:    version.Mode,
		},
		Errors: errs.Items(),
	}
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// fraction guards the zero-total case so the API never emits NaN.
func fraction(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
