package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peterstace/shapeindex"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shapeindex-demo",
		Short: "Populate a shape index with random shapes and time its operations",
		RunE:  runDemo,
	}
	addFlags(rootCmd)

	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.Println(err)
		os.Exit(1)
	}
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "config file")
	cmd.Flags().IntP("count", "n", 1000, "number of shapes to insert")
	cmd.Flags().Int("max-entries", 8, "node capacity of the tree")
	cmd.Flags().Int64("seed", 1, "random seed for shape generation")
	cmd.Flags().String("dump", "tree-dump.json", "file the tree description is written to")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := NewConfig()
	if err := cfg.Parse(cmd.Flags()); err != nil {
		return err
	}

	rt, err := shapeindex.New(cfg.MaxEntries)
	if err != nil {
		return errors.Annotate(err, "create tree")
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))

	start := time.Now()
	for id := 1; id <= cfg.Count; id++ {
		rt.Insert(shapeindex.Item{
			ID:   id,
			Name: fmt.Sprintf("shape-%d", id),
		}, randomShape(rnd))
	}
	log.Info("populated tree",
		zap.Int("count", cfg.Count),
		zap.Int("max-entries", cfg.MaxEntries),
		zap.Duration("took", time.Since(start)))

	region := shapeindex.NewRect(100, 100, 400, 400)
	start = time.Now()
	hits := rt.Search(region)
	log.Info("region search",
		zap.Int("hits", len(hits)),
		zap.Duration("took", time.Since(start)))

	lookupID := 1 + rnd.Intn(cfg.Count)
	start = time.Now()
	item, found := rt.SearchByID(lookupID)
	log.Info("id lookup",
		zap.Int("id", lookupID),
		zap.Bool("found", found),
		zap.String("name", item.Name),
		zap.Duration("took", time.Since(start)))

	deleteID := 1 + rnd.Intn(cfg.Count)
	start = time.Now()
	deleted := rt.DeleteByID(deleteID)
	log.Info("delete",
		zap.Int("id", deleteID),
		zap.Bool("deleted", deleted),
		zap.Duration("took", time.Since(start)))

	updateID := 1 + rnd.Intn(cfg.Count)
	start = time.Now()
	updated := rt.UpdateByID(updateID, randomShape(rnd))
	log.Info("update",
		zap.Int("id", updateID),
		zap.Bool("updated", updated),
		zap.Duration("took", time.Since(start)))

	if err := dumpTree(rt, cfg.DumpFile); err != nil {
		return err
	}
	log.Info("wrote tree description", zap.String("file", cfg.DumpFile))
	return nil
}

// randomShape draws a rectangle, disk, or triangle placed uniformly in a
// 1000x1000 world.
func randomShape(rnd *rand.Rand) shapeindex.Shape {
	x := rnd.Float64() * 1000
	y := rnd.Float64() * 1000
	switch rnd.Intn(3) {
	case 0:
		return shapeindex.NewRect(x, y, x+rnd.Float64()*10, y+rnd.Float64()*10)
	case 1:
		return shapeindex.Disk{CenterX: x, CenterY: y, Radius: rnd.Float64() * 5}
	default:
		return shapeindex.Polygon{Points: []shapeindex.Point{
			{X: x, Y: y},
			{X: x + rnd.Float64()*10, Y: y},
			{X: x + rnd.Float64()*10, Y: y + rnd.Float64()*10},
		}}
	}
}

func dumpTree(rt *shapeindex.RTree, file string) error {
	raw, err := json.MarshalIndent(rt.Describe(), "", "  ")
	if err != nil {
		return errors.Annotate(err, "marshal tree description")
	}
	if err := os.WriteFile(file, raw, 0o644); err != nil {
		return errors.Annotatef(err, "write %s", file)
	}
	return nil
}
