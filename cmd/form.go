package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/forms"
	"github.com/spf13/cobra"
)

type formRepository interface {
	events.Repository
	forms.Repository
}

func formCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Import or export registration forms as YAML",
	}

	cmd.AddCommand(formImportCmd(), formExportCmd())

	return cmd
}

func formImportCmd() *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace an event's form with the fields in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			db, err := formDB(cmd.Context())
			if err != nil {
				return err
			}

			schema, err := importForm(cmd.Context(), db, f, eventFlag)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d fields for event %s (version %d)\n", len(schema.Fields), schema.EventID, schema.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event ID, overrides event_id in the file")

	return cmd
}

func formExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <eventId>",
		Short: "Write an event's form as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid event id: %w", err)
			}

			db, err := formDB(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return exportForm(cmd.Context(), db, eventID, out)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "File to write, defaults to stdout")

	return cmd
}

func formDB(ctx context.Context) (formRepository, error) {
	cfg := loadConfig()

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get aws config: %w", err)
	}

	return createDB(ctx, awsCfg, cfg)
}

func importForm(ctx context.Context, repo formRepository, r io.Reader, eventFlag string) (forms.Schema, error) {
	eventID, fields, err := forms.ReadSchemaYAML(r)
	if err != nil {
		return forms.Schema{}, err
	}

	if eventFlag != "" {
		eventID, err = uuid.Parse(eventFlag)
		if err != nil {
			return forms.Schema{}, fmt.Errorf("invalid --event: %w", err)
		}
	}
	if eventID == uuid.Nil {
		return forms.Schema{}, fmt.Errorf("no event id, set event_id in the file or pass --event")
	}

	if _, err := repo.GetEvent(ctx, eventID); err != nil {
		return forms.Schema{}, fmt.Errorf("failed to load event %s: %w", eventID, err)
	}

	return forms.SaveFields(ctx, repo, eventID, fields)
}

func exportForm(ctx context.Context, repo formRepository, eventID uuid.UUID, w io.Writer) error {
	schema, err := repo.GetFormSchema(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load form for event %s: %w", eventID, err)
	}

	return forms.WriteSchemaYAML(w, schema)
}
