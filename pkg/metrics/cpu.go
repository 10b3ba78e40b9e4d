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
	"time"

	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

// usageSettleDelay separates the two load samples behind the usage
// reading. Instantaneous rates need two time-separated readings.
const usageSettleDelay = 250 * time.Millisecond

// CPU collects the CPU snapshot. Frequency-counter and temperature
// failures degrade their fields to null and land in errs.
func (g *Gatherer) CPU(errs *model.ErrorList) model.CPUData {
	physical, logical := g.probe.CPUCounts()

	usage, err := g.probe.CPUUsage(usageSettleDelay)
	if err != nil {
		errs.Append("cpu.usage", err.Error())
		usage = 0
	}

	baseFreq, _ := g.probe.BaseFrequency()

	var currentFreq *uint64
	if mhz, err := g.probe.CurrentFrequency(); err != nil {
		errs.Append("cpu.current_frequency", err.Error())
	} else {
		currentFreq = &mhz
	}

	// No temperature source is wired up on any platform yet.
	errs.Append("cpu.temperature", "unable to read CPU temperature")

	return model.CPUData{
		PhysicalCore:     physical,
		LogicalCore:      logical,
		Frequency:        baseFreq,
		CurrentFrequency: currentFreq,
		TemperatureC:     nil,
		FreePercent:      1 - usage,
		UsagePercent:     usage,
	}
}
