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

package web

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alibaba/opensandbox/metricsd/pkg/metrics"
	"github.com/alibaba/opensandbox/metricsd/pkg/web/controller"
)

// NewRouter builds a Gin engine with all metricsd routes. The access log
// goes to accessLog, one line per request.
func NewRouter(gatherer *metrics.Gatherer, accessLog io.Writer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware(), accessLogMiddleware(accessLog))

	api := r.Group("/api/v1")
	{
		api.GET("/metrics", withMetric(gatherer, func(c *controller.MetricController) { c.GetAllMetrics() }))
		api.GET("/metrics/cpu", withMetric(gatherer, func(c *controller.MetricController) { c.GetCPUMetrics() }))
		api.GET("/metrics/memory", withMetric(gatherer, func(c *controller.MetricController) { c.GetMemoryMetrics() }))
		api.GET("/metrics/watch", withMetric(gatherer, func(c *controller.MetricController) { c.WatchMetrics() }))
		api.GET("/metrics/ws", withMetric(gatherer, func(c *controller.MetricController) { c.StreamMetrics() }))
	}

	// Everything else, any method, is a deliberate empty success rather
	// than a 404.
	r.NoRoute(nullResponse)

	return r
}

func withMetric(gatherer *metrics.Gatherer, fn func(*controller.MetricController)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fn(controller.NewMetricController(ctx, gatherer))
	}
}

func nullResponse(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"data": nil})
}
