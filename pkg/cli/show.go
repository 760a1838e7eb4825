package cli

import (
	"context"
	"fmt"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/entity"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/interaction"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)

	return &cli.Command{
		Name:      "show",
		Usage:     "Show an entity and its interaction history",
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

			e, err := entity.New(repo).Get(ctx, id)
			if err != nil {
				return err
			}

			uc := interaction.New(repo, nil)
			log, err := uc.ReadAll(ctx, id)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "ID:         %s\n", e.ID)
			fmt.Fprintf(w, "Display ID: %s\n", e.DisplayID)
			fmt.Fprintf(w, "Name:       %s\n", e.Name)
			fmt.Fprintf(w, "Kind:       %s\n", e.Kind)
			fmt.Fprintf(w, "Created:    %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "\nInteractions (%d):\n", log.AlignedLen())

			for i := 0; i < log.AlignedLen(); i++ {
				fmt.Fprintf(w, "  [%d] > %s\n", i, log.Inputs[i])
				if log.Outputs[i] != "" {
					fmt.Fprintf(w, "      < %s\n", log.Outputs[i])
				}
				if meta := log.Metadata[i]; meta != nil && !meta.Timestamp.IsZero() {
					fmt.Fprintf(w, "      at %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
				}
			}

			return nil
		},
	}
}
