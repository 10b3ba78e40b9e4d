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

package controller

import (
	"bytes"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/alibaba/opensandbox/metricsd/pkg/metrics"
	"github.com/alibaba/opensandbox/metricsd/pkg/probe"
)

// nolint:unused
func newTestContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	ctx.Request = req
	return ctx, w
}

// nolint:unused
func newStaticProbe() *probe.Static {
	return &probe.Static{
		Physical:       2,
		Logical:        4,
		Usage:          0.5,
		BaseFreqMHz:    2400,
		CurrentFreqMHz: 3100,
		MemTotal:       8 << 30,
		MemAvailable:   2 << 30,
		Volumes: map[string]probe.VolumeUsage{
			"/": {Total: 500, Free: 100},
		},
		Identity: probe.Identity{
			OS:            "linux",
			PrettyName:    "Debian 12",
			KernelVersion: "6.1.0",
		},
		Counters: []probe.NetCounters{
			{Name: "lo"},
			{Name: "eth0", BytesSent: 42},
		},
	}
}

// nolint:unused
func newTestGatherer(p *probe.Static) *metrics.Gatherer {
	return metrics.NewGatherer(p, metrics.Config{DiskVolumes: []string{"/"}})
}
