// SPDX-License-Identifier: MPL-2.0

package main

import cmd "crateaudit-cli/cmd/crateaudit"

func main() {
	cmd.Execute()
}
