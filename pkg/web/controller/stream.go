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
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/alibaba/opensandbox/metricsd/pkg/log"
	"github.com/alibaba/opensandbox/metricsd/pkg/util/safego"
	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

func (c *MetricController) bindWatchRequest() (*model.WatchMetricsRequest, bool) {
	var req model.WatchMetricsRequest
	if err := c.bindQuery(&req); err != nil {
		c.RespondError(http.StatusBadRequest, model.ErrorCodeInvalidRequest, err.Error())
		return nil, false
	}
	return &req, true
}

// WatchMetrics streams the aggregated envelope via SSE on the requested
// interval. Each tick pays the full collector sampling cost.
func (c *MetricController) WatchMetrics() {
	req, ok := c.bindWatchRequest()
	if !ok {
		return
	}

	c.setupSSEResponse()

	for {
		select {
		case <-c.ctx.Request.Context().Done():
			return
		case <-time.After(req.Interval()):
			payload, _ := json.Marshal(c.gatherer.All()) //nolint:errchkjson
			if _, err := c.ctx.Writer.Write(append(payload, '\n')); err != nil {
				log.Error("WatchMetrics write data error: %v", err)
				return
			}
			if flusher, ok := c.ctx.Writer.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

// StreamMetrics pushes the aggregated envelope over a websocket until the
// client closes the connection.
func (c *MetricController) StreamMetrics() {
	req, ok := c.bindWatchRequest()
	if !ok {
		return
	}

	conn, err := wsUpgrader.Upgrade(c.ctx.Writer, c.ctx.Request, nil)
	if err != nil {
		log.Error("StreamMetrics upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// The read pump exists only to observe the close handshake.
	done := make(chan struct{})
	safego.Go(func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	wait.Until(func() {
		payload, _ := json.Marshal(c.gatherer.All()) //nolint:errchkjson
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Error("StreamMetrics write error: %v", err)
			conn.Close()
		}
	}, req.Interval(), done)
}
