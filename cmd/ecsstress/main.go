package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ecsreg/ecs"
)

const componentTypeCount = 8 // Position, Velocity, Health, AI, Tag, Lifetime, Target, Faction
const systemCount = 5        // movement, decay, ai, reporting, spawn

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	spawnPerFrame := flag.Int("spawn-per-frame", 50, "Entities spawned per frame to backfill decay losses.")
	flag.Parse()

	log.Println("Starting ECS stress test...")

	r := ecs.NewRegistry()

	log.Printf("Populating registry with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(r, rand.Intn(5)+1)
	}
	log.Println("Population complete.")

	cmds := ecs.NewCommands()
	decay := newDecaySystem(cmds)
	movement := newMovementSystem()
	ai := newAISystem()
	var spawned int64
	r.AddSystem(movement)
	r.AddSystem(decay)
	r.AddSystem(ai)
	r.AddSystem(&reportingSystem{})

	if err := r.Start(); err != nil {
		log.Fatalf("scheduler failed to start: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentTypeCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	deadline := time.Now().Add(*duration)

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

	for time.Now().Before(deadline) {
		now := time.Now()
		deltaTime := now.Sub(lastFrameTime)
		lastFrameTime = now
		decay.dt = deltaTime.Seconds()

		r.EnqueueSingleFrame(&spawnSystem{count: *spawnPerFrame, Spawned: &spawned})

		updateStart := time.Now()
		if err := r.Process(); err != nil {
			log.Fatalf("scheduler failed mid-run: %v", err)
		}
		updateDuration := time.Since(updateStart)

		report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
		totalUpdates++
	}

	if err := r.End(); err != nil {
		log.Fatalf("scheduler failed to end: %v", err)
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.MovementUpdates = movement.Moved
	report.EntitiesDestroyed = decay.Destroyed
	report.AITransitions = ai.Transitions
	report.EntitiesSpawned = spawned
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	stats := r.Stats()
	log.Printf("final registry stats: %+v", stats)
	log.Println("Stress test complete.")
}
