// Command probe performs a single fetch-classify pass against the ARPANSA
// feed and prints the result, for ops spot checks without running the service.
//
// Usage:
//
//	go run ./cmd/probe -location Canberra
//	go run ./cmd/probe -url http://localhost:9999/uvvalues.xml -timeout 3s
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/uv-advisory-service/internal/adapter/arpansa"
	"github.com/couchcryptid/uv-advisory-service/internal/domain"
	"github.com/couchcryptid/uv-advisory-service/internal/observability"
)

func main() {
	feedURL := flag.String("url", "https://uvdata.arpansa.gov.au/xml/uvvalues.xml", "feed endpoint to fetch")
	location := flag.String("location", "Canberra", "location id to look up")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := arpansa.NewClient(*feedURL, *timeout, observability.NewMetrics(), logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	obs, err := client.FetchIndex(ctx, *location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe failed (%s): %v\n", domain.KindOf(err), err)
		os.Exit(1)
	}

	tier := domain.ClassifyIndex(obs.Index)
	fmt.Printf("location:  %s\n", obs.Location)
	fmt.Printf("index:     %s\n", obs.RawIndex)
	fmt.Printf("tier:      %s\n", tier)
	fmt.Printf("advisory:  %s\n", tier.Advisory())
	fmt.Printf("observed:  %s\n", obs.ObservedAt.Format(time.RFC3339))
}
