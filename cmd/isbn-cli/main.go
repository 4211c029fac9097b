package main

import (
	"context"

	"book_price_finder/cmd/isbn-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
