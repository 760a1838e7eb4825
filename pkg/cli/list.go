package cli

import (
	"context"
	"fmt"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/entity"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		cfg    config
		offset int64
		limit  int64
	)

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "offset",
			Usage:       "Offset for pagination",
			Value:       0,
			Sources:     cli.EnvVars("LEANCHEMS_LIST_OFFSET"),
			Destination: &offset,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of entities to list",
			Value:       100,
			Sources:     cli.EnvVars("LEANCHEMS_LIST_LIMIT"),
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List entities, newest first",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			uc := entity.New(repo)
			entities, err := uc.List(ctx, entity.ListOptions{
				Offset: int(offset),
				Limit:  int(limit),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to list entities")
			}

			for _, e := range entities {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\t%s\n", e.ID, e.DisplayID, e.Kind, e.Name)
			}

			return nil
		},
	}
}
