// Command sqllex is a CLI front-end over the sqltoken tokenizer: it
// tokenizes SQL files or stdin and prints the resulting token stream as
// text or JSON, and can benchmark tokenization throughput for a file.
package main

import (
	"fmt"
	"os"

	"github.com/destrex271/DB25-sql-tokenizer/cmd/sqllex/internal/command"
)

func main() {
	if err := command.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
