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

package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/alibaba/opensandbox/metricsd/pkg/flag"
	"github.com/alibaba/opensandbox/metricsd/pkg/log"
	"github.com/alibaba/opensandbox/metricsd/pkg/metrics"
	"github.com/alibaba/opensandbox/metricsd/pkg/probe"
	_ "github.com/alibaba/opensandbox/metricsd/pkg/util/safego"
	"github.com/alibaba/opensandbox/metricsd/pkg/web"
)

// main initializes and starts the metricsd server.
func main() {
	flag.InitFlags()

	log.SetLevel(flag.ServerLogLevel)

	gatherer := metrics.NewGatherer(probe.New(), metrics.Config{
		DiskVolumes:   flag.DiskVolumes,
		NetInterfaces: flag.NetInterfacePatterns,
	})

	engine := web.NewRouter(gatherer, os.Stdout)
	addr := fmt.Sprintf("0.0.0.0:%d", flag.ServerPort)
	log.Info("metricsd listening on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Error("failed to start metricsd server: %v", err)
		os.Exit(1)
	}
}
