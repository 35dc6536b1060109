/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/stagehand-io/stagehand/cmd"

func main() {
	cmd.Execute()
}
