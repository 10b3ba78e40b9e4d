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
	"github.com/gin-gonic/gin"

	"github.com/alibaba/opensandbox/metricsd/pkg/metrics"
	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

// MetricController handles the host metrics endpoints.
type MetricController struct {
	*basicController
	gatherer *metrics.Gatherer
}

func NewMetricController(ctx *gin.Context, gatherer *metrics.Gatherer) *MetricController {
	return &MetricController{
		basicController: newBasicController(ctx),
		gatherer:        gatherer,
	}
}

// GetAllMetrics runs every collector and returns the aggregated envelope
// with the full error list. The status is 200 even when sub-metrics
// degraded; failures live in the body.
func (c *MetricController) GetAllMetrics() {
	c.RespondSuccess(c.gatherer.All())
}

// GetCPUMetrics returns the CPU snapshot alone. Collector errors are
// discarded on this route; only the aggregated endpoint surfaces them.
func (c *MetricController) GetCPUMetrics() {
	var errs model.ErrorList
	c.RespondSuccess(c.gatherer.CPU(&errs))
}

// GetMemoryMetrics returns the memory snapshot alone.
func (c *MetricController) GetMemoryMetrics() {
	var errs model.ErrorList
	c.RespondSuccess(c.gatherer.Memory(&errs))
}
