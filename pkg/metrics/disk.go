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
	"fmt"

	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

// Disk queries every configured volume root. A volume whose query fails or
// reports zero capacity is dropped from the list and recorded in errs.
func (g *Gatherer) Disk(errs *model.ErrorList) []model.DiskData {
	disks := make([]model.DiskData, 0, len(g.cfg.DiskVolumes))
	for _, volume := range g.cfg.DiskVolumes {
		total, free, err := g.probe.DiskUsage(volume)
		if err != nil {
			errs.Append("disk.usage", fmt.Sprintf("%s: %v", volume, err))
			continue
		}
		if total == 0 {
			errs.Append("disk.usage", fmt.Sprintf("%s: reported zero capacity", volume))
			continue
		}

		used := saturatingSub(total, free)
		pct := fraction(used, total)
		disks = append(disks, model.DiskData{
			Device:       volume,
			TotalBytes:   &total,
			FreeBytes:    &free,
			UsedBytes:    &used,
			UsagePercent: &pct,
		})
	}
	return disks
}
