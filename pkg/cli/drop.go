package cli

import (
	"context"
	"fmt"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/entity"
	"github.com/urfave/cli/v3"
)

func dropCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)

	return &cli.Command{
		Name:      "drop",
		Usage:     "Delete an entity and its whole interaction log",
		ArgsUsage: "<entity-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one entity ID argument")
			}
			id := model.EntityID(c.Args().First())

			ctx, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := entity.New(repo).Delete(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Entity %s deleted\n", id)
			return nil
		},
	}
}
