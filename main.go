package main

import (
	"csv-pump/cmd"

	_ "github.com/lib/pq"
)

func main() {
	cmd.Execute()
}
