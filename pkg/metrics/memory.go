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

import "github.com/alibaba/opensandbox/metricsd/pkg/web/model"

// Memory collects the physical memory snapshot. The probe reports bytes,
// used is the saturating difference and the usage fraction is 0 when the
// total is 0.
func (g *Gatherer) Memory(errs *model.ErrorList) model.MemoryData {
	total, available, err := g.probe.Memory()
	if err != nil {
		errs.Append("memory.virtual", err.Error())
		return model.MemoryData{}
	}

	used := saturatingSub(total, available)
	return model.MemoryData{
		TotalBytes:     total,
		AvailableBytes: available,
		UsedBytes:      used,
		UsagePercent:   fraction(used, total),
	}
}
