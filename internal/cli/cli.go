// Package cli implements workorderctl, the operator command line for the work order store.
//
// Command structure:
//
//	workorderctl
//	├── process            run one batch over new work orders
//	├── status <INV-n>     look up a work order by invoice id
//	├── list               print every work order
//	└── seed -f file.yaml  import work orders from YAML
//
// Configuration comes from the same environment variables as the API server.
// --data-dir and --backend override DATA_DIR and STORAGE_BACKEND.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"workorder_invoicing/internal/app"
	"workorder_invoicing/internal/config"
	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/domain/invoicing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// AppFactory builds the application the commands operate on.
type AppFactory func(ctx context.Context) (*app.App, error)

type rootOptions struct {
	dataDir string
	backend string
}

func BuildCLI() *cobra.Command {
	opts := &rootOptions{}
	return newRootCommand(opts, func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if opts.dataDir != "" {
			cfg.DataDir = opts.dataDir
		}
		if opts.backend != "" {
			cfg.StorageBackend = opts.backend
		}
		return app.New(ctx, cfg, nil)
	})
}

func newRootCommand(opts *rootOptions, factory AppFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workorderctl",
		Short:         "Operate the work order invoicing store",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "override DATA_DIR")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "override STORAGE_BACKEND (file|dynamodb)")

	rootCmd.AddCommand(buildProcessCommand(factory))
	rootCmd.AddCommand(buildStatusCommand(factory))
	rootCmd.AddCommand(buildListCommand(factory))
	rootCmd.AddCommand(buildSeedCommand(factory))

	return rootCmd
}

func buildProcessCommand(factory AppFactory) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the batch processor once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			result, err := a.Batch.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("batch run failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			if result.Idle {
				fmt.Fprintln(out, "No new work orders to process.")
				return nil
			}
			fmt.Fprintf(out, "run %s: processed=%d failed=%d\n", result.RunID, result.Processed, result.Failed)
			for _, o := range result.Outcomes {
				line := fmt.Sprintf("  %s %s billing=%s email=%s", o.InvoiceID, o.Status, o.BillingStatus, o.EmailStatus)
				if o.Error != "" {
					line += " error=" + o.Error
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full run result as JSON")
	return cmd
}

func buildStatusCommand(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "status <invoice-id>",
		Short: "Show the status of the work order behind an invoice id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			view, err := a.WorkOrders.StatusByInvoiceID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("status %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s)\n", view.InvoiceID, view.Status, view.ClientName, view.ServiceDescription)
			return nil
		},
	}
}

func buildListCommand(factory AppFactory) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			orders, err := a.WorkOrders.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list work orders: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCLIENT\tSERVICE\tTOTAL\tSTATUS")
			for _, o := range orders {
				if status != "" && string(o.Status) != status {
					continue
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n", o.ID, o.ClientName, o.ServiceDescription, o.TotalCost, o.Status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only show orders with this status")
	return cmd
}

// seedOrder is one work order in a seed file. Missing ids are assigned after the highest
// id in the store, a missing status means new and a missing total_cost is derived.
type seedOrder struct {
	ID                 int     `yaml:"id"`
	ClientName         string  `yaml:"client_name"`
	ServiceDescription string  `yaml:"service_description"`
	HoursWorked        float64 `yaml:"hours_worked"`
	HourlyRate         float64 `yaml:"hourly_rate"`
	TotalCost          float64 `yaml:"total_cost"`
	Status             string  `yaml:"status"`
}

type seedFile struct {
	WorkOrders []seedOrder `yaml:"work_orders"`
}

var ErrDuplicateWorkOrder = errors.New("work order id already exists")

// storeInitializer is implemented by stores that need a backing resource before the first
// write, such as the file backend's workOrders.json.
type storeInitializer interface {
	Init(ctx context.Context) error
}

func buildSeedCommand(factory AppFactory) *cobra.Command {
	var file string
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import work orders from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := loadSeedFile(file)
			if err != nil {
				return err
			}
			a, err := factory(cmd.Context())
			if err != nil {
				return err
			}

			if initializer, ok := a.WorkOrderRepo.(storeInitializer); ok {
				if err := initializer.Init(cmd.Context()); err != nil {
					return fmt.Errorf("seed %s: %w", file, err)
				}
			}

			stored, err := a.WorkOrderRepo.Update(cmd.Context(), func(existing []entities.WorkOrder) ([]entities.WorkOrder, bool, error) {
				merged, err := mergeSeed(existing, orders, replace)
				return merged, err == nil, err
			})
			if err != nil {
				return fmt.Errorf("seed %s: %w", file, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d work orders, store now holds %d.\n", len(orders), len(stored))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed YAML file")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace the store instead of appending")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadSeedFile(path string) ([]seedOrder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, o := range f.WorkOrders {
		if strings.TrimSpace(o.ClientName) == "" || strings.TrimSpace(o.ServiceDescription) == "" {
			return nil, fmt.Errorf("seed entry %d: client_name and service_description are required", i)
		}
		switch entities.WorkOrderStatus(o.Status) {
		case "", entities.WorkOrderStatusNew, entities.WorkOrderStatusProcessing,
			entities.WorkOrderStatusProcessed, entities.WorkOrderStatusFailed:
		default:
			return nil, fmt.Errorf("seed entry %d: unknown status %q", i, o.Status)
		}
	}
	return f.WorkOrders, nil
}

func mergeSeed(existing []entities.WorkOrder, seed []seedOrder, replace bool) ([]entities.WorkOrder, error) {
	var out []entities.WorkOrder
	if !replace {
		out = append(out, existing...)
	}

	taken := make(map[int]bool, len(out))
	nextID := 1
	for _, o := range out {
		taken[o.ID] = true
		if o.ID >= nextID {
			nextID = o.ID + 1
		}
	}
	for _, s := range seed {
		if s.ID >= nextID {
			nextID = s.ID + 1
		}
	}

	for _, s := range seed {
		id := s.ID
		if id == 0 {
			id = nextID
			nextID++
		}
		if taken[id] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateWorkOrder, id)
		}
		taken[id] = true

		total := s.TotalCost
		if total == 0 {
			total = invoicing.TotalCost(s.HoursWorked, s.HourlyRate)
		}
		status := entities.WorkOrderStatus(s.Status)
		if status == "" {
			status = entities.WorkOrderStatusNew
		}
		out = append(out, entities.WorkOrder{
			ID:                 id,
			ClientName:         strings.TrimSpace(s.ClientName),
			ServiceDescription: strings.TrimSpace(s.ServiceDescription),
			HoursWorked:        s.HoursWorked,
			HourlyRate:         s.HourlyRate,
			TotalCost:          total,
			Status:             status,
		})
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
