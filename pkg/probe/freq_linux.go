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

//go:build linux

package probe

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	scalingCurFreqPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"

	// The counter is sampled twice; the clock jitters between reads and a
	// single instantaneous value under-reports boosted cores.
	freqSettleDelay = 120 * time.Millisecond
)

func (systemProbe) CurrentFrequency() (uint64, error) {
	first, err := readFreqKHz(scalingCurFreqPath)
	if err != nil {
		return 0, fmt.Errorf("open frequency counter: %w", err)
	}

	time.Sleep(freqSettleDelay)

	second, err := readFreqKHz(scalingCurFreqPath)
	if err != nil {
		return 0, fmt.Errorf("collect frequency counter: %w", err)
	}
	if first > second {
		second = first
	}
	return second / 1000, nil
}

func readFreqKHz(path string) (uint64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	khz, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("format counter value %q: %w", strings.TrimSpace(string(raw)), err)
	}
	return khz, nil
}
