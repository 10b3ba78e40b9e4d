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
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader    = "X-Request-Id"
	forwardedForHeader = "X-Forwarded-For"

	accessLogTimeLayout = "02/Jan/2006:15:04:05 -0700"
)

// requestIDMiddleware echoes the caller's request id or generates one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Writer.Header().Set(requestIDHeader, id)
		ctx.Next()
	}
}

// accessLogMiddleware emits one Apache-style line per request:
//
//	1.2.3.4 - - [23/Aug/2026:10:15:02 +0000] "GET /api/v1/metrics HTTP/1.1" 200 372ms
//
// The client address comes from X-Forwarded-For and defaults to "-".
func accessLogMiddleware(out io.Writer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		started := time.Now()
		method := ctx.Request.Method
		path := ctx.Request.URL.Path
		ip := ctx.GetHeader(forwardedForHeader)
		if ip == "" {
			ip = "-"
		}

		ctx.Next()

		fmt.Fprintf(out, "%s - - [%s] \"%s %s HTTP/1.1\" %d %dms\n",
			ip,
			time.Now().Format(accessLogTimeLayout),
			method,
			path,
			ctx.Writer.Status(),
			time.Since(started).Milliseconds(),
		)
	}
}
