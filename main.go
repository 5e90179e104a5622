// SPDX-License-Identifier: MPL-2.0

package main

import cmd "scriptpick/cmd/scriptpick"

func main() {
	cmd.Execute()
}
