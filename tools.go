//go:build tools

package decint

import (
	_ "golang.org/x/tools/cmd/stringer"
)
