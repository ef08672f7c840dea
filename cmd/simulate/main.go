package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

type SimConfig struct {
	APIBaseURL  string
	Duration    time.Duration
	Workers     int
	BookRatio   float64
	ChatRatio   float64
	RecordRatio float64
	ReadRatio   float64
}

type OperationMetrics struct {
	Total     int64
	Success   int64
	Rejected  int64
	Error     int64
	Latencies []time.Duration
	mu        sync.Mutex
}

func (om *OperationMetrics) Record(latency time.Duration, success bool, rejected bool) {
	atomic.AddInt64(&om.Total, 1)
	if success {
		atomic.AddInt64(&om.Success, 1)
	} else if rejected {
		atomic.AddInt64(&om.Rejected, 1)
	} else {
		atomic.AddInt64(&om.Error, 1)
	}

	om.mu.Lock()
	om.Latencies = append(om.Latencies, latency)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (avg, min, max, p50, p95 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.Latencies) == 0 {
		return 0, 0, 0, 0, 0
	}

	latencies := make([]time.Duration, len(om.Latencies))
	copy(latencies, om.Latencies)

	sort.Slice(latencies, func(i, j int) bool {
		return latencies[i] < latencies[j]
	})

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]

	p50Idx := len(latencies) * 50 / 100
	if p50Idx >= len(latencies) {
		p50Idx = len(latencies) - 1
	}
	p50 = latencies[p50Idx]

	p95Idx := len(latencies) * 95 / 100
	if p95Idx >= len(latencies) {
		p95Idx = len(latencies) - 1
	}
	p95 = latencies[p95Idx]

	return avg, min, max, p50, p95
}

type Metrics struct {
	Register     OperationMetrics
	Booking      OperationMetrics
	Chat         OperationMetrics
	CreateRecord OperationMetrics
	ListSchedule OperationMetrics
	ListRecords  OperationMetrics
}

type Simulator struct {
	config  SimConfig
	client  *http.Client
	metrics Metrics
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("simulator starting")

	cfg := loadConfig()
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Printf("config: duration=%s workers=%d book=%.2f chat=%.2f record=%.2f read=%.2f",
		cfg.Duration, cfg.Workers, cfg.BookRatio, cfg.ChatRatio, cfg.RecordRatio, cfg.ReadRatio)

	gofakeit.Seed(time.Now().UnixNano())

	sim := &Simulator{
		config: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	sim.Run()
	sim.PrintReport()
}

func loadConfig() SimConfig {
	cfg := SimConfig{
		APIBaseURL:  getEnv("SIM_API_BASE_URL", "http://localhost:8080"),
		Duration:    getDuration("SIM_DURATION", 30*time.Second),
		Workers:     getInt("SIM_WORKERS", 10),
		BookRatio:   getFloat("SIM_BOOK_RATIO", 0.3),
		ChatRatio:   getFloat("SIM_CHAT_RATIO", 0.2),
		RecordRatio: getFloat("SIM_RECORD_RATIO", 0.2),
		ReadRatio:   getFloat("SIM_READ_RATIO", 0.3),
	}

	// Normalize ratios
	total := cfg.BookRatio + cfg.ChatRatio + cfg.RecordRatio + cfg.ReadRatio
	if total > 0 {
		cfg.BookRatio /= total
		cfg.ChatRatio /= total
		cfg.RecordRatio /= total
		cfg.ReadRatio /= total
	}

	return cfg
}

func validateConfig(cfg SimConfig) error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("SIM_WORKERS must be > 0")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("SIM_DURATION must be > 0")
	}
	return nil
}

func (s *Simulator) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Duration)
	defer cancel()

	log.Printf("starting simulation for %s with %d workers", s.config.Duration, s.config.Workers)

	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			s.worker(ctx, workerID)
		}(i)
	}

	wg.Wait()
	log.Println("simulation complete")
}

// worker registers its own patient and then exercises the API as that user.
func (s *Simulator) worker(ctx context.Context, workerID int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

	token, ok := s.registerUser(ctx, workerID)
	if !ok {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
			r := rng.Float64()
			switch {
			case r < s.config.BookRatio:
				s.doBooking(ctx, rng, token)
			case r < s.config.BookRatio+s.config.ChatRatio:
				s.doChat(ctx, rng, token)
			case r < s.config.BookRatio+s.config.ChatRatio+s.config.RecordRatio:
				s.doCreateRecord(ctx, rng, token)
			default:
				if rng.Intn(2) == 0 {
					s.doListSchedule(ctx, token)
				} else {
					s.doListRecords(ctx, rng, token)
				}
			}
		}
	}
}

func (s *Simulator) registerUser(ctx context.Context, workerID int) (string, bool) {
	userTypes := []string{"migrant", "local", "returning_indian", "foreigner"}
	languages := []string{"en", "ml", "hi", "ta"}

	reqBody := map[string]any{
		"name":              gofakeit.Name(),
		"email":             fmt.Sprintf("sim-%d-%d@example.com", workerID, time.Now().UnixNano()),
		"phone":             gofakeit.Phone(),
		"password":          "simulated-pw-1",
		"userType":          userTypes[workerID%len(userTypes)],
		"preferredLanguage": languages[workerID%len(languages)],
	}
	body, _ := json.Marshal(reqBody)

	start := time.Now()
	req, _ := http.NewRequestWithContext(ctx, "POST", s.config.APIBaseURL+"/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	latency := time.Since(start)

	if err != nil {
		s.metrics.Register.Record(latency, false, false)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		s.metrics.Register.Record(latency, false, resp.StatusCode == http.StatusTooManyRequests)
		return "", false
	}

	var authResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil || authResp.Token == "" {
		s.metrics.Register.Record(latency, false, false)
		return "", false
	}

	s.metrics.Register.Record(latency, true, false)
	return authResp.Token, true
}

func (s *Simulator) doBooking(ctx context.Context, rng *rand.Rand, token string) {
	types := []string{"in-person", "video", "phone"}

	reqBody := map[string]string{
		"doctorName":   "Dr. " + gofakeit.Name(),
		"hospitalName": gofakeit.Company() + " Hospital",
		"department":   "General Medicine",
		"date":         time.Now().AddDate(0, 0, rng.Intn(30)+1).Format("2006-01-02"),
		"time":         fmt.Sprintf("%02d:00", 9+rng.Intn(9)),
		"type":         types[rng.Intn(len(types))],
	}
	body, _ := json.Marshal(reqBody)

	start := time.Now()
	resp, err := s.doAuthed(ctx, "POST", "/appointments", body, token)
	latency := time.Since(start)

	success := false
	rejected := false
	if err == nil {
		defer resp.Body.Close()
		success = resp.StatusCode == http.StatusCreated
		rejected = resp.StatusCode == http.StatusTooManyRequests
	}

	s.metrics.Booking.Record(latency, success, rejected)
}

func (s *Simulator) doChat(ctx context.Context, rng *rand.Rand, token string) {
	prompts := []string{
		"I have a fever since yesterday",
		"my head hurts a lot",
		"how do I book an appointment with a doctor",
		"what vaccinations do I need",
		"I have a cough and cold",
		"tell me about a healthy diet",
	}

	body, _ := json.Marshal(map[string]string{
		"message": prompts[rng.Intn(len(prompts))],
	})

	start := time.Now()
	resp, err := s.doAuthed(ctx, "POST", "/chat/messages", body, token)
	latency := time.Since(start)

	success := false
	rejected := false
	if err == nil {
		defer resp.Body.Close()
		success = resp.StatusCode == http.StatusCreated
		// A conflict means the previous turn is still thinking.
		rejected = resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusTooManyRequests
	}

	s.metrics.Chat.Record(latency, success, rejected)
}

func (s *Simulator) doCreateRecord(ctx context.Context, rng *rand.Rand, token string) {
	types := []string{"checkup", "test", "immunization", "consultation", "emergency"}

	reqBody := map[string]string{
		"type":         types[rng.Intn(len(types))],
		"title":        gofakeit.JobTitle() + " Visit",
		"doctorName":   "Dr. " + gofakeit.Name(),
		"hospitalName": gofakeit.Company() + " Hospital",
		"date":         time.Now().AddDate(0, -rng.Intn(12), 0).Format("2006-01-02"),
	}
	body, _ := json.Marshal(reqBody)

	start := time.Now()
	resp, err := s.doAuthed(ctx, "POST", "/records", body, token)
	latency := time.Since(start)

	success := false
	if err == nil {
		defer resp.Body.Close()
		success = resp.StatusCode == http.StatusCreated
	}

	s.metrics.CreateRecord.Record(latency, success, false)
}

func (s *Simulator) doListSchedule(ctx context.Context, token string) {
	start := time.Now()
	resp, err := s.doAuthed(ctx, "GET", "/appointments", nil, token)
	latency := time.Since(start)

	success := false
	if err == nil {
		defer resp.Body.Close()
		success = resp.StatusCode == http.StatusOK
	}

	s.metrics.ListSchedule.Record(latency, success, false)
}

func (s *Simulator) doListRecords(ctx context.Context, rng *rand.Rand, token string) {
	queries := []string{"", "?q=visit", "?type=checkup", "?q=doctor&type=test"}

	start := time.Now()
	resp, err := s.doAuthed(ctx, "GET", "/records"+queries[rng.Intn(len(queries))], nil, token)
	latency := time.Since(start)

	success := false
	if err == nil {
		defer resp.Body.Close()
		success = resp.StatusCode == http.StatusOK
	}

	s.metrics.ListRecords.Record(latency, success, false)
}

func (s *Simulator) doAuthed(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.config.APIBaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return s.client.Do(req)
}

func (s *Simulator) PrintReport() {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("SIMULATION REPORT")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Duration: %s\n", s.config.Duration)
	fmt.Printf("Workers: %d\n", s.config.Workers)
	fmt.Println()

	printOperationReport("Register", &s.metrics.Register)
	printOperationReport("Book Appointment", &s.metrics.Booking)
	printOperationReport("Chat Turn", &s.metrics.Chat)
	printOperationReport("Create Record", &s.metrics.CreateRecord)
	printOperationReport("List Schedule", &s.metrics.ListSchedule)
	printOperationReport("List Records", &s.metrics.ListRecords)
}

func printOperationReport(name string, om *OperationMetrics) {
	total := atomic.LoadInt64(&om.Total)
	if total == 0 {
		return
	}

	success := atomic.LoadInt64(&om.Success)
	rejected := atomic.LoadInt64(&om.Rejected)
	errorCount := atomic.LoadInt64(&om.Error)

	avg, min, max, p50, p95 := om.Stats()

	fmt.Printf("%s:\n", name)
	fmt.Printf("  Total: %d\n", total)
	fmt.Printf("  Success: %d (%.1f%%)\n", success, float64(success)/float64(total)*100)
	if rejected > 0 {
		fmt.Printf("  Rejected: %d (%.1f%%)\n", rejected, float64(rejected)/float64(total)*100)
	}
	if errorCount > 0 {
		fmt.Printf("  Errors: %d (%.1f%%)\n", errorCount, float64(errorCount)/float64(total)*100)
	}
	fmt.Printf("  Latency: avg=%s min=%s max=%s p50=%s p95=%s\n",
		avg.Round(time.Millisecond), min.Round(time.Millisecond), max.Round(time.Millisecond),
		p50.Round(time.Millisecond), p95.Round(time.Millisecond))
	fmt.Println()
}

// Helper functions

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
