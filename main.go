package main

import (
	"context"
	"os"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/cli"
)

func main() {
	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		os.Exit(err.Code)
	}
}
