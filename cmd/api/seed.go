package main

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// seedCandidates are probed in order when no --url is given. The last
// entry covers the service name inside a docker-compose network.
var seedCandidates = []string{
	"http://localhost:8080/",
	"http://127.0.0.1:8080/",
	"http://api:8080/",
}

func seedCmd() *cobra.Command {
	var (
		count  int
		prefix string
		url    string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate a running instance with sample items over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, count, prefix, url)
		},
	}

	cmd.Flags().IntVar(&count, "count", 5, "number of items to create")
	cmd.Flags().StringVar(&prefix, "prefix", "Demo", "item name prefix")
	cmd.Flags().StringVar(&url, "url", "", "base URL of the running service (probed when empty)")

	return cmd
}

func runSeed(cmd *cobra.Command, count int, prefix, explicitURL string) error {
	client := &http.Client{Timeout: 5 * time.Second}

	base := pickBaseURL(client, explicitURL)
	itemsURL := base + "items"

	cmd.Printf("Seeding %d items to %s\n", count, itemsURL)

	ok := 0
	for i := 0; i < count; i++ {
		suffix, err := randSuffix(5)
		if err != nil {
			return err
		}

		name := fmt.Sprintf("%s %d %s", prefix, i+1, suffix)
		description := fmt.Sprintf("Seeded item #%d", i+1)

		status, body, err := postItem(client, itemsURL, name, description)
		switch {
		case err != nil:
			cmd.Printf("  x %s (error: %v)\n", name, err)
		case status >= 200 && status < 300:
			ok++
			cmd.Printf("  + %s\n", name)
		default:
			cmd.Printf("  x %s (HTTP %d) %s\n", name, status, body)
		}

		time.Sleep(50 * time.Millisecond)
	}

	cmd.Printf("Done. Inserted %d/%d\n", ok, count)

	if ok == 0 && count > 0 {
		return fmt.Errorf("no items inserted")
	}
	return nil
}

// pickBaseURL resolves the target: an explicit URL is trusted as-is
// (trimmed to the base when a collection URL is passed); otherwise the
// candidates are probed via the health endpoint. The first candidate
// is the last resort, so failures produce a clear connection error.
func pickBaseURL(client *http.Client, explicit string) string {
	if explicit != "" {
		base := strings.TrimSuffix(strings.TrimSuffix(explicit, "/"), "/items")
		return base + "/"
	}

	for _, base := range seedCandidates {
		if checkHealth(client, base) {
			return base
		}
	}
	return seedCandidates[0]
}

func checkHealth(client *http.Client, base string) bool {
	resp, err := client.Get(base + "health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var payload struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false
	}
	return payload.OK
}

func postItem(client *http.Client, itemsURL, name, description string) (int, string, error) {
	payload, err := json.Marshal(map[string]string{
		"name":        name,
		"description": description,
	})
	if err != nil {
		return 0, "", err
	}

	resp, err := client.Post(itemsURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(body), nil
}

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randSuffix(n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			return "", err
		}
		b[i] = suffixAlphabet[idx.Int64()]
	}
	return string(b), nil
}
