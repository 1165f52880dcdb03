// Command matmul builds two matrices out of growable arrays, exchanges
// columns between them and prints their product.
package main

import (
	"github.com/pavanmanishd/array/internal/config"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	Execute()
}
