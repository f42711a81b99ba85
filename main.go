// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/editorconfig/cmd/editorconfig"

func main() {
	cmd.Execute()
}
