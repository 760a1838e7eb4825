package cli

import (
	"context"
	"fmt"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/entity"
	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	var (
		cfg  config
		name string
		kind string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "Entity name",
			Sources:     cli.EnvVars("LEANCHEMS_ENTITY_NAME"),
			Destination: &name,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "kind",
			Aliases:     []string{"k"},
			Usage:       "Entity kind (customer, subject, product, knowledge)",
			Value:       string(model.KindCustomer),
			Sources:     cli.EnvVars("LEANCHEMS_ENTITY_KIND"),
			Destination: &kind,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "new",
		Usage: "Create a new entity with an empty interaction log",
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
			created, err := uc.Create(ctx, entity.CreateInput{
				Name: name,
				Kind: model.Kind(kind),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Entity created: %s (%s)\n", created.ID, created.DisplayID)
			return nil
		},
	}
}
