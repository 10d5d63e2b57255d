// Command soltrack-cli queries a running wallet backend and renders the
// daily transfer totals as a terminal table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/solwatch/solana-wallet-backend/models"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Wallet backend base URL")
	address := flag.String("address", "", "Wallet address to query")
	flag.Parse()

	if *address == "" {
		fmt.Fprintln(os.Stderr, "-address is required")
		os.Exit(1)
	}

	totals, err := fetchDailyTotals(*server, *address)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching daily totals: %v\n", err)
		os.Exit(1)
	}

	displayTotals(*address, totals)
}

func fetchDailyTotals(server, address string) ([]models.DailyTotal, error) {
	u := server + "/get-daily-transfer-totals?address=" + url.QueryEscape(address)
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var out models.DailyTotalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.DailyTotals, nil
}

// displayTotals prints the daily totals in a table format.
func displayTotals(address string, totals []models.DailyTotal) {
	if len(totals) == 0 {
		fmt.Println("No transfers in the trailing week.")
		return
	}

	fmt.Printf("Daily transfer totals for %s:\n", address)
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Date", "Total (SOL)", "From"})

	for _, day := range totals {
		t.AppendRow(table.Row{
			day.Date,
			fmt.Sprintf("%.9f", day.Total),
			day.From,
		})
	}

	t.Render()
}
