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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alibaba/opensandbox/metricsd/pkg/probe"
)

func TestStripVendorPrefix(t *testing.T) {
	cases := []struct {
		prettyName string
		platform   string
	}{
		{"Windows 11 Pro", "11 Pro"},
		{"windows Server 2022 Datacenter", "Server 2022 Datacenter"},
		{"WINDOWS 10 Home", "10 Home"},
		{"Ubuntu 22.04", "Ubuntu 22.04"},
		{"windows", "windows"}, // no trailing space, not a true prefix
		{"openSUSE windows manager", "openSUSE windows manager"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.platform, stripVendorPrefix(tc.prettyName), "pretty_name %q", tc.prettyName)
	}
}

func TestHostCollector(t *testing.T) {
	p := healthyProbe()
	p.Identity = probe.Identity{
		OS:            "windows",
		PrettyName:    "Windows 11 Pro",
		KernelVersion: "10.0.22631",
	}

	snapshot := newTestGatherer(p).Host()

	assert.Equal(t, "windows", snapshot.OS)
	assert.Equal(t, "11 Pro", snapshot.Platform)
	assert.Equal(t, "Windows 11 Pro", snapshot.PrettyName)
	assert.Equal(t, "10.0.22631", snapshot.KernelVersion)
}

func TestHostCollectorUnknownDefaults(t *testing.T) {
	p := healthyProbe()
	p.Identity = probe.Identity{}

	snapshot := newTestGatherer(p).Host()

	assert.Equal(t, "unknown", snapshot.OS)
	assert.Equal(t, "unknown", snapshot.Platform)
	assert.Equal(t, "unknown", snapshot.KernelVersion)
	assert.Equal(t, "unknown", snapshot.PrettyName)
}

func TestHostCollectorReadFailure(t *testing.T) {
	p := healthyProbe()
	p.IdentityErr = errors.New("identification failed")

	snapshot := newTestGatherer(p).Host()

	assert.Equal(t, "unknown", snapshot.OS)
	assert.Equal(t, "unknown", snapshot.PrettyName)
}
