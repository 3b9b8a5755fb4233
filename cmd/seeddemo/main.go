// cmd/seeddemo/main.go — Seeds a demo workspace: a populated BOM snapshot
// under the given session id, plus a handful of projects in the registry.
// Usage: go run ./cmd/seeddemo -session <session-id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/bom"
	"github.com/rkashyapa/automanage-industrial-hub/internal/config"
	"github.com/rkashyapa/automanage-industrial-hub/internal/infra"
	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	sessionID := flag.String("session", "demo", "session id to seed the BOM snapshot under")
	projects := flag.Int("projects", 4, "number of demo projects to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	snapshots := repository.NewSnapshotRepository(rdb, 0)

	store := seedBOM()
	if err := snapshots.SaveBOM(ctx, store.Snapshot(*sessionID)); err != nil {
		log.Fatal().Err(err).Msg("failed to save demo snapshot")
	}
	log.Info().Str("session_id", *sessionID).Msg("demo BOM snapshot saved")

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	projectRepo := repository.NewProjectRepository(db)

	statuses := []model.ProjectStatus{model.ProjectActive, model.ProjectDelayed, model.ProjectPlanning, model.ProjectCompleted}
	for i := 0; i < *projects; i++ {
		budget := decimal.NewFromInt(int64(gofakeit.Number(50, 900) * 1000))
		p := &model.Project{
			Code:     fmt.Sprintf("PRJ-%03d", i+1),
			Name:     gofakeit.ProductName(),
			Client:   gofakeit.Company(),
			Status:   statuses[i%len(statuses)],
			Progress: gofakeit.Number(5, 95),
			Budget:   budget,
			Spent:    budget.Mul(decimal.NewFromFloat(0.6)).Round(2),
			TeamSize: gofakeit.Number(2, 12),
			Active:   true,
		}
		if err := projectRepo.Create(ctx, p); err != nil {
			log.Warn().Err(err).Str("code", p.Code).Msg("skipping project (already seeded?)")
			continue
		}
		log.Info().Str("code", p.Code).Str("name", p.Name).Msg("project created")
	}
}

// seedBOM builds the demo bill of materials shown on a fresh workspace.
func seedBOM() *bom.Store {
	st := bom.NewStore()

	must(st.AddCategory("Optical"))
	must(st.AddCategory("Mechanical"))
	must(st.AddCategory("Electrical"))
	must(st.AddCategory("Computing Hardware"))

	add := func(category string, draft bom.PartDraft) model.Part {
		p, err := st.AddPart(category, draft)
		must(err)
		return p
	}

	cam := add("Optical", bom.PartDraft{
		Name:   "Sony XYZ",
		PartID: "OPT001",
		DescriptionEntries: []model.DescriptionEntry{
			{Key: "Type", Value: "Area scan camera"},
			{Key: "Resolution", Value: "5 MP"},
			{Key: "Interface", Value: "GigE"},
		},
		Quantity: 1,
	})
	add("Optical", bom.PartDraft{
		Name:   "25mm Fixed Focal Lens",
		PartID: "OPT002",
		DescriptionEntries: []model.DescriptionEntry{
			{Key: "Mount", Value: "C-Mount"},
			{Key: "Aperture", Value: "f/1.4"},
		},
		Quantity: 2,
	})
	add("Mechanical", bom.PartDraft{
		Name:        "Camera Mounting Bracket",
		PartID:      "MECH001",
		Description: "Anodized aluminum, adjustable tilt",
		Quantity:    2,
	})
	add("Electrical", bom.PartDraft{
		Name:        "24V PSU",
		PartID:      "ELEC001",
		Description: "DIN rail mount, 120W",
		Quantity:    1,
	})
	add("Computing Hardware", bom.PartDraft{
		Name:   "Vision Processing Unit",
		PartID: "COMP001",
		DescriptionEntries: []model.DescriptionEntry{
			{Key: "CPU", Value: "8-core industrial"},
			{Key: "GPU", Value: "Embedded inference module"},
		},
		Quantity: 1,
	})

	price := decimal.NewFromInt(2500)
	_, err := st.AddVendor(cam.PartID, bom.VendorDraft{
		Name:     "Imaging Supplies Co",
		Price:    &price,
		LeadTime: "4 weeks",
	})
	must(err)
	_, err = st.FinalizeVendor(cam.PartID, 0)
	must(err)

	return st
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
