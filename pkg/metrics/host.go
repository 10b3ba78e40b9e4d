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
	"strings"

	"github.com/alibaba/opensandbox/metricsd/pkg/probe"
	"github.com/alibaba/opensandbox/metricsd/pkg/web/model"
)

const unknownValue = "unknown"

// vendorPrefix is stripped from the pretty name to form the platform
// string, matching how "Windows 11 Pro" reports platform "11 Pro".
const vendorPrefix = "windows "

// Host collects the OS identity. There is no failure path: values the
// platform cannot provide degrade to "unknown".
func (g *Gatherer) Host() model.HostData {
	identity, err := g.probe.Host()
	if err != nil {
		identity = probe.Identity{}
	}

	prettyName := orUnknown(identity.PrettyName)
	return model.HostData{
		OS:            orUnknown(identity.OS),
		Platform:      stripVendorPrefix(prettyName),
		KernelVersion: orUnknown(identity.KernelVersion),
		PrettyName:    prettyName,
	}
}

func orUnknown(value string) string {
	if value == "" {
		return unknownValue
	}
	return value
}

// stripVendorPrefix removes a case-insensitive leading vendor token. The
// token must be a true prefix including its trailing space; anything else
// passes through verbatim.
func stripVendorPrefix(prettyName string) string {
	if len(prettyName) >= len(vendorPrefix) &&
		strings.EqualFold(prettyName[:len(vendorPrefix)], vendorPrefix) {
		return prettyName[len(vendorPrefix):]
	}
	return prettyName
}
