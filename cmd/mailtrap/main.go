// Command mailtrap is a small command line client for the Mailtrap API.
//
// Settings are read from the environment (MAILTRAP_TOKEN, MAILTRAP_ACCOUNT_ID,
// ...), an optional .env file in the working directory and an optional
// mailtrap.yml.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := run(os.Args, DefaultStreams(), "mailtrap.yml"); err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
