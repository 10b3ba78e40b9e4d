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

// Package version carries the capture tag reported by the metrics API.
// Override at build time, e.g.:
//
//	go build -ldflags "-X github.com/alibaba/opensandbox/metricsd/pkg/version.Version=1.3.0 \
//	  -X github.com/alibaba/opensandbox/metricsd/pkg/version.Mode=release"
package version

var (
	// Version is the exporter version reported under capture.version.
	Version = "1.2.0"

	// Mode is the build mode reported under capture.mode.
	Mode = "debug"
)
