package main

import (
	"os"

	"github.com/projectascend/ascend/app"
	"github.com/projectascend/ascend/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
