package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"compute-market/internal/domain/market"
	"compute-market/internal/domain/matching"
	"compute-market/internal/domain/settlement"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var inputFlags = []cli.Flag{
	&cli.PathFlag{
		Name:     flagDemand,
		Aliases:  []string{"d"},
		Usage:    "JSON file holding one demand request",
		Required: true,
	},
	&cli.PathFlag{
		Name:     flagSupply,
		Aliases:  []string{"s"},
		Usage:    "JSON file holding a supply offer or an array of them",
		Required: true,
	},
}

var matchCmd = &cli.Command{
	Name:  "match",
	Usage: "Rank the compatible offers for a demand request",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:    flagLimit,
			Aliases: []string{"n"},
			Usage:   "maximum number of candidates, 0 for the default",
			Value:   matching.DefaultLimit,
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "also list incompatible offers with the reasons they were rejected",
		},
	}, inputFlags...),
	Action: func(cctx *cli.Context) error {
		demand, pool, err := loadInputs(cctx)
		if err != nil {
			return err
		}

		out := cctx.App.Writer
		if cctx.Bool("all") {
			renderEvaluations(out, demand, pool)
			return nil
		}

		candidates := matching.FindBestMatches(demand, pool, cctx.Int(flagLimit))
		if len(candidates) == 0 {
			fmt.Fprintln(out, "no compatible offers")
			return nil
		}
		renderCandidates(out, candidates)
		return nil
	},
}

var selectCmd = &cli.Command{
	Name:  "select",
	Usage: "Pick the offer auto-match would use for a demand request",
	Flags: inputFlags,
	Action: func(cctx *cli.Context) error {
		demand, pool, err := loadInputs(cctx)
		if err != nil {
			return err
		}

		out := cctx.App.Writer
		supply, ok := matching.SelectSingleMatch(demand, pool)
		if !ok {
			fmt.Fprintln(out, "no offer satisfies the request")
			return nil
		}

		t := newVisualTable("ID", "WALLET", "RESOURCES", "PRICE/H", "TOTAL", "PERFORMANCE")
		t.addRow([]string{
			supply.ID.String(),
			supply.WalletAddress,
			formatResources(supply.Resources),
			supply.PricePerHour.String(),
			settlement.TotalCost(supply.PricePerHour, demand.DurationHours).StringFixed(6),
			strconv.FormatFloat(matching.PerformanceScore(supply), 'f', 2, 64),
		}, nil)
		t.render(out)
		return nil
	},
}

func loadInputs(cctx *cli.Context) (market.DemandRequest, []market.SupplyOffer, error) {
	demand, err := loadDemand(cctx.Path(flagDemand))
	if err != nil {
		return market.DemandRequest{}, nil, err
	}
	pool, err := loadSupplies(cctx.Path(flagSupply))
	if err != nil {
		return market.DemandRequest{}, nil, err
	}
	return demand, pool, nil
}

func renderCandidates(w io.Writer, candidates []matching.Candidate) {
	t := newVisualTable("RANK", "ID", "RESOURCES", "PRICE/H", "SCORE", "REASONS")
	for i, c := range candidates {
		t.addRow([]string{
			strconv.Itoa(i + 1),
			c.Supply.ID.String(),
			formatResources(c.Supply.Resources),
			c.Supply.PricePerHour.String(),
			strconv.FormatFloat(c.Compatibility.Score, 'f', 1, 64),
			strings.Join(c.Compatibility.Reasons, "; "),
		}, nil)
	}
	t.render(w)
}

func renderEvaluations(w io.Writer, demand market.DemandRequest, pool []market.SupplyOffer) {
	ok := []tablewriter.Colors{{}, {}, {}, {tablewriter.Bold, tablewriter.FgGreenColor}, {}, {}}
	rejected := []tablewriter.Colors{{}, {}, {}, {tablewriter.Bold, tablewriter.FgRedColor}, {}, {}}

	t := newVisualTable("ID", "RESOURCES", "PRICE/H", "COMPATIBLE", "SCORE", "REASONS")
	for _, supply := range pool {
		result := matching.Evaluate(demand, supply)
		colors := rejected
		score := "-"
		if result.Compatible {
			colors = ok
			score = strconv.FormatFloat(result.Score, 'f', 1, 64)
		}
		t.addRow([]string{
			supply.ID.String(),
			formatResources(supply.Resources),
			supply.PricePerHour.String(),
			strconv.FormatBool(result.Compatible),
			score,
			strings.Join(result.Reasons, "; "),
		}, colors)
	}
	t.render(w)
}

func formatResources(r market.Resources) string {
	gpu := strconv.Itoa(r.GPUCount)
	if r.GPUType != "" {
		gpu += "x " + r.GPUType
	}
	return fmt.Sprintf("%d cpu / %s gpu / %d GB ram / %d GB disk", r.CPUCores, gpu, r.RAMGB, r.StorageGB)
}
