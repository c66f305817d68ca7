// Command loadtest fires concurrent income and expense writes at one account and
// verifies afterwards that the month's balance never went negative.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type scenario struct {
	name   string
	kind   string
	amount string
}

var scenarios = []scenario{
	{"Income Small", "income", "10.00"},
	{"Income Large", "income", "40.00"},
	{"Expense Small", "expense", "15.00"},
	{"Expense Medium", "expense", "35.00"},
	{"Expense Large", "expense", "80.00"},
}

type stats struct {
	mu        sync.Mutex
	created   int
	vetoed    int
	failed    map[string]int
	latencies []time.Duration
	perKind   map[string]int
}

func (s *stats) record(sc scenario, status int, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latencies = append(s.latencies, latency)
	s.perKind[sc.name]++
	switch {
	case err != nil:
		s.failed[err.Error()]++
	case status == http.StatusCreated:
		s.created++
	case status == http.StatusBadRequest && sc.kind == "expense":
		s.vetoed++
	default:
		s.failed[fmt.Sprintf("HTTP %d", status)]++
	}
}

type client struct {
	http    *http.Client
	baseURL string
	token   string
}

func (c *client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func main() {
	concurrency := flag.Int("c", 8, "number of concurrent writers")
	total := flag.Int("n", 200, "total number of transactions to post")
	baseURL := flag.String("url", "http://localhost:5000", "base URL of the API")
	email := flag.String("email", "demo@fintrack.local", "account email")
	password := flag.String("password", "demo-password", "account password")
	delayMs := flag.Int("delay", 0, "delay between requests of one writer in milliseconds")
	flag.Parse()

	ctx := context.Background()
	c := &client{http: &http.Client{Timeout: 10 * time.Second}, baseURL: *baseURL}

	var login struct {
		Token string `json:"token"`
	}
	status, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{"email": *email, "password": *password}, &login)
	if err != nil || status != http.StatusOK {
		fmt.Fprintf(os.Stderr, "login failed: status=%d err=%v\n", status, err)
		os.Exit(1)
	}
	c.token = login.Token

	today := time.Now().UTC().Format(time.DateOnly)
	s := &stats{failed: make(map[string]int), perKind: make(map[string]int)}

	fmt.Printf("Posting %d transactions with %d writers\n", *total, *concurrency)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for i := 0; i < *total; i++ {
		sc := scenarios[rand.IntN(len(scenarios))]
		g.Go(func() error {
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
			began := time.Now()
			status, err := c.do(gctx, http.MethodPost, "/api/transactions", map[string]string{
				"date":        today,
				"description": fmt.Sprintf("load test %d", i),
				"amount":      sc.amount,
				"type":        sc.kind,
				"category":    "Load Test",
			}, nil)
			s.record(sc, status, time.Since(began), err)
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	printResults(s, *total, elapsed)

	balance, err := monthBalance(ctx, c)
	if err != nil {
		fmt.Fprintln(os.Stderr, "balance check failed:", err)
		os.Exit(1)
	}
	fmt.Printf("\nCurrent month balance: %s\n", balance.StringFixed(2))
	if balance.IsNegative() {
		fmt.Fprintln(os.Stderr, "FAIL: expenses exceeded income under concurrency")
		os.Exit(1)
	}
}

// monthBalance sums income minus expenses of the current month
func monthBalance(ctx context.Context, c *client) (decimal.Decimal, error) {
	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var rows []struct {
		Amount string `json:"amount"`
		Type   string `json:"type"`
	}
	path := fmt.Sprintf("/api/transactions/filter?startDate=%s&endDate=%s", first.Format(time.DateOnly), last.Format(time.DateOnly))
	status, err := c.do(ctx, http.MethodGet, path, nil, &rows)
	if err != nil {
		return decimal.Zero, err
	}
	if status != http.StatusOK {
		return decimal.Zero, fmt.Errorf("HTTP %d", status)
	}

	balance := decimal.Zero
	for _, r := range rows {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		if r.Type == "expense" {
			amount = amount.Neg()
		}
		balance = balance.Add(amount)
	}
	return balance, nil
}

func printResults(s *stats, total int, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Println("\n===== Load Test Results =====")
	fmt.Printf("Total time:   %v\n", elapsed)
	fmt.Printf("Created:      %d\n", s.created)
	fmt.Printf("Vetoed:       %d (expense over month balance)\n", s.vetoed)
	fmt.Printf("Throughput:   %.1f req/s\n", float64(total)/elapsed.Seconds())

	if len(s.latencies) > 0 {
		sorted := slices.Clone(s.latencies)
		slices.Sort(sorted)
		pct := func(p int) time.Duration { return sorted[min(len(sorted)-1, len(sorted)*p/100)] }
		fmt.Printf("Latency:      p50=%v p90=%v p99=%v max=%v\n", pct(50), pct(90), pct(99), sorted[len(sorted)-1])
	}

	fmt.Println("\nScenario distribution:")
	for _, sc := range scenarios {
		fmt.Printf("  %-15s %d\n", sc.name, s.perKind[sc.name])
	}

	if len(s.failed) > 0 {
		fmt.Println("\nFailures:")
		for msg, n := range s.failed {
			fmt.Printf("  %s: %d\n", msg, n)
		}
	}
}
