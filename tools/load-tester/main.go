package main

import (
	"context"
	"flag"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/V4T54L/ga4-measurement/internal/adapter/transport"
	"github.com/V4T54L/ga4-measurement/internal/catalog"
	"github.com/V4T54L/ga4-measurement/internal/domain"
	"github.com/V4T54L/ga4-measurement/internal/pkg/logger"
	"github.com/V4T54L/ga4-measurement/internal/usecase"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080/", "Base URL of the collection endpoint")
	apiSecret := flag.String("api-secret", "supersecret", "Measurement Protocol API secret")
	measurementID := flag.String("measurement-id", "G-LOADTEST", "Measurement id of the web stream")
	concurrency := flag.Int("c", 10, "Number of concurrent workers")
	duration := flag.Duration("d", 30*time.Second, "Duration of the load test")
	rps := flag.Int("rps", 1000, "Requests per second limit")
	batch := flag.Int("batch", 1, "Events per request (1-25)")
	flag.Parse()

	if *batch < 1 || *batch > domain.MaxEventsPerPayload {
		log.Fatalf("batch must be between 1 and %d", domain.MaxEventsPerPayload)
	}

	log.Printf("Starting load test on %s", *baseURL)
	log.Printf("Concurrency: %d, Duration: %s, RPS: %d, Batch: %d", *concurrency, *duration, *rps, *batch)

	var wg sync.WaitGroup
	var successCount, errorCount atomic.Int64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	limiter := rate.NewLimiter(rate.Limit(*rps), 100) // Allow bursts up to 100
	quiet := logger.New("error")
	price := domain.MustPrice("USD", 29.99)

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			// Each worker acts as its own web client.
			client, err := usecase.NewClient(
				transport.RateLimited(transport.NewHTTPTransport(5*time.Second), limiter),
				usecase.ClientConfig{
					BaseURL:   *baseURL,
					APISecret: *apiSecret,
					Context: usecase.ClientContext{
						Identity: domain.GtagIdentity(*measurementID, uuid.NewString()),
					},
				},
				quiet.With("worker", workerID),
				nil,
			)
			if err != nil {
				log.Printf("worker %d: %v", workerID, err)
				return
			}
			sessionID := uuid.NewString()

			for {
				select {
				case <-ctx.Done():
					return
				default:
					events := make([]domain.Event, 0, *batch)
					for j := 0; j < *batch; j++ {
						events = append(events, catalog.Purchase(catalog.TransactionParams{
							TransactionID: uuid.NewString(),
							Price:         &price,
							Items:         []domain.Item{{ID: "SKU_LOAD", Name: "Load Test Item", Price: &price}},
							Engagement:    domain.Engagement{SessionID: sessionID, EngagementTime: 1},
						}))
					}

					if err := client.Send(ctx, events, time.Time{}); err != nil {
						if ctx.Err() == nil {
							errorCount.Add(1)
						}
						continue
					}
					successCount.Add(1)
				}
			}
		}(i)
	}

	wg.Wait()

	totalRequests := successCount.Load() + errorCount.Load()
	actualRPS := float64(totalRequests) / duration.Seconds()

	log.Println("Load test finished.")
	log.Printf("Total Requests: %d", totalRequests)
	log.Printf("Successful (204 No Content): %d", successCount.Load())
	log.Printf("Errors: %d", errorCount.Load())
	log.Printf("Actual RPS: %.2f", actualRPS)
}
