package main

import (
	"fmt"
	"time"

	"workhours/config"
	"workhours/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultTokenTTL = 24 * time.Hour

func newTokenCmd() *cobra.Command {
	var (
		owner string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed API access token for an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			return printAccessToken(cmd, cfg, owner, ttl)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner id; a new one is generated when empty")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "Token lifetime")

	return cmd
}

func printAccessToken(cmd *cobra.Command, cfg *config.Config, owner string, ttl time.Duration) error {
	ownerID := uuid.New()
	if owner != "" {
		parsed, err := uuid.Parse(owner)
		if err != nil {
			return errors.Wrap(err, "--owner must be a uuid")
		}
		ownerID = parsed
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateAccessToken(ownerID, ttl)
	if err != nil {
		return errors.Wrap(err, "failed to sign token")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "owner: %s\ntoken: %s\n", ownerID, token)

	return nil
}
