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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortFromEnvAbsent(t *testing.T) {
	t.Setenv(portEnv, "")

	assert.Equal(t, DefaultPort, portFromEnv())
}

func TestPortFromEnvNonNumeric(t *testing.T) {
	t.Setenv(portEnv, "not-a-port")

	assert.Equal(t, DefaultPort, portFromEnv())
}

func TestPortFromEnvValid(t *testing.T) {
	t.Setenv(portEnv, "8080")

	assert.Equal(t, 8080, portFromEnv())
}

func TestPortFromEnvOutOfRange(t *testing.T) {
	for _, raw := range []string{"-1", "65536", "70000"} {
		t.Setenv(portEnv, raw)

		if got := portFromEnv(); got != DefaultPort {
			t.Fatalf("PORT=%s: expected default %d, got %d", raw, DefaultPort, got)
		}
	}
}

func TestIntFromEnv(t *testing.T) {
	t.Setenv(logLevelEnv, "7")
	assert.Equal(t, 7, intFromEnv(logLevelEnv, defaultLogLevel))

	t.Setenv(logLevelEnv, "loud")
	assert.Equal(t, defaultLogLevel, intFromEnv(logLevelEnv, defaultLogLevel))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"/", "/data"}, splitList("/, /data"))
	assert.Equal(t, []string{"eth*"}, splitList("eth*,,  "))
	assert.Empty(t, splitList(""))
}

func TestDefaultDiskVolume(t *testing.T) {
	volume := defaultDiskVolume()
	if volume != "/" && volume != `C:\` {
		t.Fatalf("unexpected default volume %q", volume)
	}
}
