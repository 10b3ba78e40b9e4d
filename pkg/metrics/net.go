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
	"github.com/bmatcuk/doublestar/v4"

	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

// Net enumerates live interface counters, filtered by the configured glob
// patterns. When enumeration fails it degrades to the historical
// two-interface zero stub and records the failure.
func (g *Gatherer) Net(errs *model.ErrorList) []model.NetData {
	counters, err := g.probe.NetCounters()
	if err != nil {
		errs.Append("net.io_counters", err.Error())
		return []model.NetData{
			{Name: "lo"},
			{Name: "eth0"},
		}
	}

	nets := make([]model.NetData, 0, len(counters))
	for _, c := range counters {
		if !g.interfaceSelected(c.Name) {
			continue
		}
		nets = append(nets, model.NetData{
			Name:        c.Name,
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
			ErrIn:       c.ErrIn,
			ErrOut:      c.ErrOut,
			DropIn:      c.DropIn,
			DropOut:     c.DropOut,
			FifoIn:      c.FifoIn,
			FifoOut:     c.FifoOut,
		})
	}
	return nets
}

func (g *Gatherer) interfaceSelected(name string) bool {
	if len(g.cfg.NetInterfaces) == 0 {
		return true
	}
	for _, pattern := range g.cfg.NetInterfaces {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
