package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/interaction"
	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v3"
)

func appendCommand() *cli.Command {
	var (
		cfg    config
		input  string
		output string
		userID string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Interaction input text (the side that gets embedded)",
			Destination: &input,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Interaction output text",
			Destination: &output,
		},
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "User ID to record in metadata",
			Sources:     cli.EnvVars("LEANCHEMS_USER_ID"),
			Destination: &userID,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, embeddingFlags(&cfg)...)

	return &cli.Command{
		Name:      "append",
		Usage:     "Append an interaction to an entity's log",
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

			embedder, err := cfg.newEmbedder(ctx)
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = " Embedding and saving interaction..."
			s.Start()

			uc := interaction.New(repo, embedder)
			it, err := uc.Append(ctx, interaction.AppendInput{
				EntityID: id,
				Input:    input,
				Output:   output,
				UserID:   userID,
			})

			s.Stop()
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Interaction appended (embedding dim %d)\n", len(it.Embedding))
			return nil
		},
	}
}
