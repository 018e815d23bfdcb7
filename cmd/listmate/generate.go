package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"listmate/internal/app"
	"listmate/internal/model"
)

var generateFlags struct {
	address      string
	listingType  string
	price        float64
	region       string
	notes        string
	propertyType string
	bedrooms     int
	bathrooms    float64
	sqft         int
	asJSON       bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one listing from the command line",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Log.Sync()

		rec := model.NewRecord(
			generateFlags.address,
			model.ListingType(generateFlags.listingType),
			generateFlags.price,
			generateFlags.region,
		)
		rec.Notes = generateFlags.notes
		if cmd.Flags().Changed("property-type") {
			rec.PropertyType = &generateFlags.propertyType
		}
		if cmd.Flags().Changed("bedrooms") {
			rec.Bedrooms = &generateFlags.bedrooms
		}
		if cmd.Flags().Changed("bathrooms") {
			rec.Bathrooms = &generateFlags.bathrooms
		}
		if cmd.Flags().Changed("sqft") {
			rec.Sqft = &generateFlags.sqft
		}

		rec = a.Pipeline.Run(cmd.Context(), rec)

		if generateFlags.asJSON {
			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			if rec.HasErrors() {
				os.Exit(1)
			}
			return nil
		}

		if rec.HasErrors() {
			for _, msg := range rec.Errors {
				fmt.Fprintln(os.Stderr, "error:", msg)
			}
			os.Exit(1)
		}

		fmt.Println(rec.FormattedListing)
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.address, "address", "", "property address (required)")
	f.StringVar(&generateFlags.listingType, "type", "sale", "listing type: sale or rent")
	f.Float64Var(&generateFlags.price, "price", 0, "asking price (required)")
	f.StringVar(&generateFlags.region, "region", "US", "region code: US, CA, UK, AU")
	f.StringVar(&generateFlags.notes, "notes", "", "free-form property notes")
	f.StringVar(&generateFlags.propertyType, "property-type", "", "property type, e.g. condo")
	f.IntVar(&generateFlags.bedrooms, "bedrooms", 0, "number of bedrooms")
	f.Float64Var(&generateFlags.bathrooms, "bathrooms", 0, "number of bathrooms")
	f.IntVar(&generateFlags.sqft, "sqft", 0, "interior size in square feet")
	f.BoolVar(&generateFlags.asJSON, "json", false, "print the full record as JSON")
	_ = generateCmd.MarkFlagRequired("address")
	_ = generateCmd.MarkFlagRequired("price")
}
