package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fairslot/cmd"
	"fairslot/internal"
	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/repository"
	l3_service "fairslot/internal/service/l3"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "fairslot",
		Short: "operational scripts for the allocation engine",
	}
	root.AddCommand(sweepCmd())
	root.AddCommand(ingestMetricsCmd())
	root.AddCommand(allocateCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "end every active auction whose deadline has passed",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			ended, err := handler.AuctionService.SweepExpired(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("ended %d expired auctions\n", ended)

			return nil
		},
	}
}

func allocateCmd() *cobra.Command {
	var from, to string

	c := &cobra.Command{
		Use:   "allocate <asset-id>",
		Short: "fill an asset's open slots from its active bids",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			assetID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid asset id %q: %w", args[0], err)
			}
			fromDate, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fmt.Errorf("invalid from date %q: %w", from, err)
			}
			toDate, err := time.Parse("2006-01-02", to)
			if err != nil {
				return fmt.Errorf("invalid to date %q: %w", to, err)
			}
			if toDate.Before(fromDate) {
				return fmt.Errorf("to date is before from date")
			}

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			asset, err := handler.AssetRepository.Get(assetID)
			if err != nil {
				return err
			}

			ctx := context.Background()
			bidRepository := repository.NewBidRepository(handler.Db)
			lockRepository := repository.NewAdvisoryLockRepository()
			activeStatus := model.BidStatus_Active

			for date := fromDate; !date.After(toDate); date = date.AddDate(0, 0, 1) {
				err = func() error {
					tx, err := handler.Db.Begin()
					if err != nil {
						return err
					}
					defer tx.Rollback()

					acquired, err := lockRepository.TryAcquireSlotLock(tx, assetID, date)
					if err != nil {
						return err
					}
					if !acquired {
						return fmt.Errorf("slot %s/%s is locked by another writer", assetID, date.Format("2006-01-02"))
					}

					candidates, err := bidRepository.List(tx, repository.BidListFilter{
						AssetID:   &assetID,
						Status:    &activeStatus,
						StartDate: &date,
					})
					if err != nil {
						return err
					}

					out, err := handler.SlotAllocatorService.Allocate(ctx, tx, l3_service.AllocateInput{
						Asset:      *asset,
						Date:       date,
						Candidates: candidates,
					})
					if err != nil {
						return err
					}
					if err := tx.Commit(); err != nil {
						return err
					}

					fmt.Printf("%s: allocated %d, unallocated %d (internal %d external %d monetization %d of %d)\n",
						date.Format("2006-01-02"), len(out.Allocated), len(out.Unallocated),
						out.Breakdown.InternalAllocated, out.Breakdown.ExternalAllocated,
						out.Breakdown.MonetizationAllocated, out.Breakdown.TotalSlots)

					return nil
				}()
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
	c.Flags().StringVar(&from, "from", time.Now().UTC().Format("2006-01-02"), "first date to allocate")
	c.Flags().StringVar(&to, "to", time.Now().UTC().Format("2006-01-02"), "last date to allocate")

	return c
}

func ingestMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest-metrics <file>",
		Short: "load a performance metrics csv export",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			pmRepository := repository.NewPerformanceMetricRepository(handler.Db)
			n, err := internal.IngestPerformanceMetrics(args[0], pmRepository)
			if err != nil {
				return err
			}
			fmt.Printf("ingested %d metric rows\n", n)

			return nil
		},
	}
}
