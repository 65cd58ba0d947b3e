package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// target is a public read endpoint and how often it is hit relative to others.
type target struct {
	path   func() string
	weight int
}

var targets = []target{
	{path: static("/products"), weight: 4},
	{path: static("/products?ordering=price&limit=10"), weight: 2},
	{path: static("/products?availability=in_stock&featured=true"), weight: 2},
	{path: static("/categories"), weight: 1},
	{path: static("/locations/states"), weight: 2},
	{path: func() string { return fmt.Sprintf("/locations/states/%d/cities", 1+rand.Intn(5)) }, weight: 2},
	// Unknown products exercise the 404 path.
	{path: func() string { return fmt.Sprintf("/products/%08x-0000-4000-8000-000000000000", rand.Uint32()) }, weight: 1},
}

func static(p string) func() string {
	return func() string { return p }
}

func main() {
	baseURL := "http://localhost:8080"
	if v := os.Getenv("BASE_URL"); v != "" {
		baseURL = v
	}
	client := &http.Client{Timeout: 5 * time.Second}

	total := 0
	for _, t := range targets {
		total += t.weight
	}

	for {
		var wg sync.WaitGroup
		for range 1 + rand.Intn(10) {
			wg.Go(func() { doRequest(client, baseURL+pick(total).path()) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func pick(total int) target {
	n := rand.Intn(total)
	for _, t := range targets {
		if n < t.weight {
			return t
		}
		n -= t.weight
	}
	return targets[0]
}

func doRequest(client *http.Client, url string) {
	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	resp.Body.Close()
	fmt.Println("GET", url, "->", resp.Status, time.Since(start).Round(time.Millisecond))
}
