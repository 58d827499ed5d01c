package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/adhikav/customerdesk/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		customers    = flag.Int("customers", cfg.NumCustomers, "number of customers to generate")
		companyRatio = flag.Float64("company-ratio", cfg.CompanyRatio, "fraction of customers that are companies")
		seed         = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir    = flag.String("output-dir", "data", "directory to write customers.json")
		writeStdout  = flag.Bool("stdout", false, "write the dataset to stdout instead of a file")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumCustomers: *customers,
		CompanyRatio: *companyRatio,
		Seed:         *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	dataset, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		// same shape as the customers.json file, so the output can be piped
		// straight into a dataset directory
		if err := json.NewEncoder(os.Stdout).Encode(dataset.Customers); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d customers into %s\n", len(dataset.Customers), *outputDir)
}
