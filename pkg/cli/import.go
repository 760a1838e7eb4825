package cli

import (
	"context"
	"fmt"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/interaction"
	"github.com/urfave/cli/v3"
)

func importCommand() *cli.Command {
	var (
		cfg config
		key string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "key",
			Aliases:     []string{"k"},
			Usage:       "Object key of the snapshot to restore (defaults to <entity-id>.json)",
			Destination: &key,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Aliases:     []string{"b"},
			Usage:       "Cloud Storage bucket for snapshots",
			Sources:     cli.EnvVars("LEANCHEMS_SNAPSHOT_BUCKET"),
			Destination: &cfg.bucket,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "import",
		Usage:     "Restore an entity's interaction log from a Cloud Storage snapshot",
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

			st, err := cfg.newStorage(ctx)
			if err != nil {
				return err
			}

			if key == "" {
				key = string(id) + ".json"
			}

			uc := interaction.New(repo, nil, interaction.WithStorage(st))
			log, err := uc.Import(ctx, id, key)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Restored %d interactions from gs://%s/%s\n",
				log.AlignedLen(), cfg.bucket, key)
			return nil
		},
	}
}
