package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"
)

// APIBenchmark drives repeated requests against a running server instance.
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Client      *http.Client
}

// RequestResult holds the outcome of a single request.
type RequestResult struct {
	Duration   time.Duration
	StatusCode int
	Error      error
}

// BenchmarkResult aggregates the outcomes of a benchmark run.
type BenchmarkResult struct {
	TotalRequests  int
	SuccessCount   int
	FailureCount   int
	TotalDuration  time.Duration
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	RequestsPerSec float64
	StatusCodes    map[int]int
}

// NewAPIBenchmark returns a benchmark with sane defaults applied.
func NewAPIBenchmark(baseURL string, concurrency, requests int) *APIBenchmark {
	if concurrency <= 0 {
		concurrency = 10
	}
	if requests <= 0 {
		requests = 100
	}
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RunGET benchmarks a GET endpoint.
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.runTest(func() RequestResult {
		return b.doRequest(http.MethodGet, path, nil)
	})
}

// RunPOST benchmarks a POST endpoint with a JSON body.
func (b *APIBenchmark) RunPOST(path string, body interface{}) *BenchmarkResult {
	return b.runTest(func() RequestResult {
		return b.doRequest(http.MethodPost, path, body)
	})
}

// RunPUT benchmarks a PUT endpoint with a JSON body.
func (b *APIBenchmark) RunPUT(path string, body interface{}) *BenchmarkResult {
	return b.runTest(func() RequestResult {
		return b.doRequest(http.MethodPut, path, body)
	})
}

// RunDELETE benchmarks a DELETE endpoint.
func (b *APIBenchmark) RunDELETE(path string) *BenchmarkResult {
	return b.runTest(func() RequestResult {
		return b.doRequest(http.MethodDelete, path, nil)
	})
}

func (b *APIBenchmark) doRequest(method, path string, body interface{}) RequestResult {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return RequestResult{Error: err}
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, b.BaseURL+path, reader)
	if err != nil {
		return RequestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if b.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.AuthToken)
	}

	start := time.Now()
	resp, err := b.Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		return RequestResult{Duration: duration, Error: err}
	}
	defer resp.Body.Close()

	return RequestResult{Duration: duration, StatusCode: resp.StatusCode}
}

// runTest fans the request function out over a bounded worker pool and
// collects per-request results into an aggregate.
func (b *APIBenchmark) runTest(request func() RequestResult) *BenchmarkResult {
	results := make([]RequestResult, b.Requests)
	limiter := make(chan struct{}, b.Concurrency)
	var wg sync.WaitGroup

	totalStart := time.Now()
	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		limiter <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-limiter }()
			results[idx] = request()
		}(i)
	}
	wg.Wait()
	totalDuration := time.Since(totalStart)

	result := &BenchmarkResult{
		TotalRequests: b.Requests,
		TotalDuration: totalDuration,
		StatusCodes:   make(map[int]int),
	}

	var sum time.Duration
	for i, r := range results {
		if r.Error != nil || r.StatusCode >= http.StatusBadRequest {
			result.FailureCount++
		} else {
			result.SuccessCount++
		}
		if r.StatusCode != 0 {
			result.StatusCodes[r.StatusCode]++
		}
		sum += r.Duration
		if i == 0 || r.Duration < result.MinDuration {
			result.MinDuration = r.Duration
		}
		if r.Duration > result.MaxDuration {
			result.MaxDuration = r.Duration
		}
	}
	if b.Requests > 0 {
		result.AvgDuration = sum / time.Duration(b.Requests)
	}
	if totalDuration > 0 {
		result.RequestsPerSec = float64(b.Requests) / totalDuration.Seconds()
	}
	return result
}

// PrintResult writes a human readable summary of a benchmark run.
func (r *BenchmarkResult) PrintResult(name string) {
	fmt.Printf("\n===== %s =====\n", name)
	fmt.Printf("Requests:       %d (success %d, failed %d)\n", r.TotalRequests, r.SuccessCount, r.FailureCount)
	fmt.Printf("Total duration: %v\n", r.TotalDuration)
	fmt.Printf("Latency:        min %v / avg %v / max %v\n", r.MinDuration, r.AvgDuration, r.MaxDuration)
	fmt.Printf("Throughput:     %.2f req/s\n", r.RequestsPerSec)

	codes := make([]int, 0, len(r.StatusCodes))
	for code := range r.StatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("HTTP %d:       %d\n", code, r.StatusCodes[code])
	}
}
