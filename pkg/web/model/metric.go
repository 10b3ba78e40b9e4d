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

package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CPUData is a point-in-time CPU snapshot. Percentage fields are fractions
// in [0,1]. CurrentFrequency and TemperatureC are null when the underlying
// read failed; the failure itself travels as a MetricError.
type CPUData struct {
	PhysicalCore     int      `json:"physical_core"`
	LogicalCore      int      `json:"logical_core"`
	Frequency        uint64   `json:"frequency"`
	CurrentFrequency *uint64  `json:"current_frequency"`
	TemperatureC     *float64 `json:"temperature_c"`
	FreePercent      float64  `json:"free_percent"`
	UsagePercent     float64  `json:"usage_percent"`
}

// MemoryData is a physical memory snapshot in bytes.
type MemoryData struct {
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	UsagePercent   float64 `json:"usage_percent"`
}

// DiskData is a per-volume capacity snapshot. The optional fields are set
// together on a successful query.
type DiskData struct {
	Device       string   `json:"device"`
	TotalBytes   *uint64  `json:"total_bytes"`
	FreeBytes    *uint64  `json:"free_bytes"`
	UsedBytes    *uint64  `json:"used_bytes"`
	UsagePercent *float64 `json:"usage_percent"`
}

// HostData identifies the host operating system. Platform is the pretty
// name with a leading vendor token stripped.
type HostData struct {
	OS            string `json:"os"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernel_version"`
	PrettyName    string `json:"pretty_name"`
}

// NetData holds one interface's traffic counters.
type NetData struct {
	Name        string `json:"name"`
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
	ErrIn       uint64 `json:"err_in"`
	ErrOut      uint64 `json:"err_out"`
	DropIn      uint64 `json:"drop_in"`
	DropOut     uint64 `json:"drop_out"`
	FifoIn      uint64 `json:"fifo_in"`
	FifoOut     uint64 `json:"fifo_out"`
}

// CaptureMeta tags a response with the exporter version and build mode.
type CaptureMeta struct {
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

// MetricError reports one degraded sub-metric without failing the request.
type MetricError struct {
	Metric []string `json:"metric"`
	Err    string   `json:"err"`
}

// ErrorList accumulates MetricErrors in collection order.
type ErrorList struct {
	items []MetricError
}

// Append records a degraded metric under its identifier path.
func (l *ErrorList) Append(metric, message string) {
	l.items = append(l.items, MetricError{
		Metric: []string{metric},
		Err:    message,
	})
}

// Items returns the accumulated errors, never nil so the envelope always
// serializes an array.
func (l *ErrorList) Items() []MetricError {
	if l.items == nil {
		return []MetricError{}
	}
	return l.items
}

// Len reports the number of accumulated errors.
func (l *ErrorList) Len() int {
	return len(l.items)
}

// AllData groups every collector snapshot.
type AllData struct {
	CPU    CPUData    `json:"cpu"`
	Memory MemoryData `json:"memory"`
	Disk   []DiskData `json:"disk"`
	Host   HostData   `json:"host"`
	Net    []NetData  `json:"net"`
}

// AllMetrics is the aggregated response envelope.
type AllMetrics struct {
	Data    AllData       `json:"data"`
	Capture CaptureMeta   `json:"capture"`
	Errors  []MetricError `json:"errors"`
}

// WatchMetricsRequest bounds the streaming interval for the watch and
// websocket endpoints.
type WatchMetricsRequest struct {
	IntervalMs int `form:"interval_ms,default=1000" validate:"gte=200,lte=60000"`
}

func (r *WatchMetricsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Interval returns the requested tick period.
func (r *WatchMetricsRequest) Interval() time.Duration {
	return time.Duration(r.IntervalMs) * time.Millisecond
}
