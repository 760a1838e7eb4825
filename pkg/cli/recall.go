package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/recall"
	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v3"
)

func recallCommand() *cli.Command {
	var (
		cfg   config
		query string
		topK  int64
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Query text to rank interactions against",
			Destination: &query,
			Required:    true,
		},
		&cli.IntFlag{
			Name:        "top",
			Aliases:     []string{"k"},
			Usage:       "Number of interactions to return",
			Value:       5,
			Destination: &topK,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, embeddingFlags(&cfg)...)

	return &cli.Command{
		Name:      "recall",
		Usage:     "Rank an entity's interactions by similarity to a query",
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
			s.Suffix = " Searching interactions..."
			s.Start()

			uc := recall.New(repo, embedder)
			results, err := uc.TopK(ctx, id, query, int(topK))

			s.Stop()
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if len(results) == 0 {
				fmt.Fprintln(w, "No interactions recorded")
				return nil
			}

			for i, r := range results {
				fmt.Fprintf(w, "%d. [%.4f] > %s\n", i+1, r.Similarity, r.Input)
				if r.Output != "" {
					fmt.Fprintf(w, "             < %s\n", r.Output)
				}
			}

			return nil
		},
	}
}
