// Package main provides a simple in-process classifier benchmark
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/pflag"

	"github.com/muliwe/hero-strength/internal/classifier"
)

// stats holds the counters collected by a benchmark run
type stats struct {
	Calls        int64
	Errors       int64
	TotalLatency time.Duration
	Weak         int64
	Strong       int64
	Unbelievable int64
}

func main() {
	duration := pflag.DurationP("duration", "d", 5*time.Second, "Test duration")
	concurrency := pflag.IntP("concurrency", "c", 10, "Number of concurrent workers")
	maxValue := pflag.Float64("max", 40, "Upper bound of generated strength values")
	pflag.Parse()

	fmt.Printf("Benchmarking classifier\n")
	fmt.Printf("Duration: %v, Concurrency: %d\n\n", *duration, *concurrency)

	s := run(*duration, *concurrency, *maxValue)
	if s.Calls == 0 {
		fmt.Println("No calls completed")
		os.Exit(1)
	}

	fmt.Printf("Calls:        %d\n", s.Calls)
	fmt.Printf("Errors:       %d\n", s.Errors)
	fmt.Printf("Throughput:   %.0f calls/sec\n", float64(s.Calls)/duration.Seconds())
	fmt.Printf("Avg latency:  %.1f ns\n", float64(s.TotalLatency.Nanoseconds())/float64(s.Calls))
	fmt.Printf("Buckets:      weak=%d strong=%d unbelievable=%d\n", s.Weak, s.Strong, s.Unbelievable)
}

// run classifies random values in [0, maxValue) from concurrency workers until duration elapses
func run(duration time.Duration, concurrency int, maxValue float64) stats {
	var (
		totalCalls   int64
		totalErrors  int64
		totalLatency int64 // in nanoseconds
		buckets      [3]int64
		wg           sync.WaitGroup
		stop         = make(chan struct{})
	)

	// Start workers
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					v := rand.Float64() * maxValue
					start := time.Now()
					label, err := classifier.LabelFor(v)
					if err == nil {
						_, err = classifier.Classify(v)
					}
					latency := time.Since(start).Nanoseconds()

					atomic.AddInt64(&totalCalls, 1)
					atomic.AddInt64(&totalLatency, latency)
					if err != nil {
						atomic.AddInt64(&totalErrors, 1)
						continue
					}
					switch label {
					case classifier.LabelWeak:
						atomic.AddInt64(&buckets[0], 1)
					case classifier.LabelStrong:
						atomic.AddInt64(&buckets[1], 1)
					default:
						atomic.AddInt64(&buckets[2], 1)
					}
				}
			}
		}()
	}

	time.Sleep(duration)
	close(stop)
	wg.Wait()

	return stats{
		Calls:        totalCalls,
		Errors:       totalErrors,
		TotalLatency: time.Duration(totalLatency),
		Weak:         buckets[0],
		Strong:       buckets[1],
		Unbelievable: buckets[2],
	}
}
