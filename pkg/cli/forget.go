package cli

import (
	"context"
	"fmt"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/interaction"
	"github.com/urfave/cli/v3"
)

func forgetCommand() *cli.Command {
	var (
		cfg   config
		index int64
	)

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "index",
			Aliases:     []string{"i"},
			Usage:       "Zero-based position of the interaction to remove",
			Destination: &index,
			Required:    true,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "forget",
		Usage:     "Remove one interaction from an entity's log by position",
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

			uc := interaction.New(repo, nil)
			if _, err := uc.DeleteAt(ctx, id, int(index)); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Interaction %d removed from %s\n", index, id)
			return nil
		},
	}
}
