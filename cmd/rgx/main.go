package main

import (
	"os"

	"github.com/joho/godotenv"
)

// main is the entry point for rgx, the pattern builder CLI. A .env in the
// working directory may supply RGX_DB and RGX_LIBSQL_AUTH_TOKEN; a missing
// file is fine.
func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
