package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "leanchems",
		Usage: "Entity interaction-memory store with embedding-based recall",
		Commands: []*cli.Command{
			newCommand(),
			listCommand(),
			showCommand(),
			appendCommand(),
			forgetCommand(),
			recallCommand(),
			dropCommand(),
			exportCommand(),
			importCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
