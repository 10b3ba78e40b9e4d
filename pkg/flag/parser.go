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

package flag

import (
	"flag"
	"os"
	"runtime"
	"strconv"
	"strings"
)

const (
	portEnv        = "PORT"
	logLevelEnv    = "METRICSD_LOG_LEVEL"
	diskVolumesEnv = "METRICSD_DISK_VOLUMES"
	netIfacesEnv   = "METRICSD_NET_IFACES"

	// DefaultPort is used whenever PORT is absent, unparsable or out of range.
	DefaultPort = 59232

	defaultLogLevel = 6
)

var (
	diskVolumesValue string
	netIfacesValue   string
)

// InitFlags registers CLI flags and env overrides. Env values are resolved
// first and become the flag defaults, so flags win when both are set.
func InitFlags() {
	ServerPort = portFromEnv()
	ServerLogLevel = intFromEnv(logLevelEnv, defaultLogLevel)
	diskVolumesValue = envOrDefault(diskVolumesEnv, defaultDiskVolume())
	netIfacesValue = envOrDefault(netIfacesEnv, "*")

	flag.IntVar(&ServerPort, "port", ServerPort, "Server listening port (env PORT, default: 59232)")
	flag.IntVar(&ServerLogLevel, "log-level", ServerLogLevel, "Server log level (0=LevelEmergency, 1=LevelAlert, 2=LevelCritical, 3=LevelError, 4=LevelWarning, 5=LevelNotice, 6=LevelInformational, 7=LevelDebug, default: 6)")
	flag.StringVar(&diskVolumesValue, "disk-volumes", diskVolumesValue, "Comma-separated volume roots queried by the disk collector")
	flag.StringVar(&netIfacesValue, "net-ifaces", netIfacesValue, "Comma-separated glob patterns selecting network interfaces")

	flag.Parse()

	if ServerPort < 0 || ServerPort > 65535 {
		ServerPort = DefaultPort
	}
	DiskVolumes = splitList(diskVolumesValue)
	NetInterfacePatterns = splitList(netIfacesValue)
}

// portFromEnv reads PORT and falls back to DefaultPort on any bad value.
// A misconfigured port must not abort startup.
func portFromEnv() int {
	raw := os.Getenv(portEnv)
	if raw == "" {
		return DefaultPort
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 || port > 65535 {
		return DefaultPort
	}
	return port
}

func intFromEnv(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return val
}

func envOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func defaultDiskVolume() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
