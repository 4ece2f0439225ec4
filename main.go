// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/nexusdev/nexus-service/cmd"
)

func main() {
	cmd.Execute()
}
