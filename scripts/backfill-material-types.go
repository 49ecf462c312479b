package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/pkg/idgen"
)

// One-off maintenance pass: older imports and hand edits left some
// materials with an empty type, which makes them invisible to type
// filters. This backfills those to "general" and prints the class
// distribution so drift is easy to spot.

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	runID := idgen.NewPrefixed("backfill").Generate()
	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Run:", runID)
	fmt.Println("Scanning materials...")

	iter := client.Scan(ctx, 0, "catalog:material:*", 0).Iterator()

	classCounts := make(map[genshin.MaterialClass]int)
	var untypedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var material genshin.Material
		if err := json.Unmarshal([]byte(data), &material); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			continue
		}

		classCounts[material.Class()]++
		if material.Type == "" {
			fmt.Printf("✗ No type on %s (%s)\n", key, material.Name)
			untypedKeys = append(untypedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d materials\n", checkedCount)

	classes := make([]string, 0, len(classCounts))
	for class := range classCounts {
		classes = append(classes, string(class))
	}
	sort.Strings(classes)
	for _, class := range classes {
		fmt.Printf("  %-10s %d\n", class, classCounts[genshin.MaterialClass(class)])
	}

	if len(untypedKeys) == 0 {
		fmt.Println("\nNothing to backfill.")
		return
	}

	fmt.Printf("\nDo you want to set type \"general\" on these %d materials? (yes/no): ", len(untypedKeys))
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range untypedKeys {
		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Failed to re-read %s: %v\n", key, err)
			continue
		}

		var material genshin.Material
		if err := json.Unmarshal([]byte(data), &material); err != nil {
			fmt.Printf("Failed to parse %s: %v\n", key, err)
			continue
		}

		material.Type = "general"
		updated, err := json.Marshal(material)
		if err != nil {
			fmt.Printf("Failed to marshal %s: %v\n", key, err)
			continue
		}

		if err := client.Set(ctx, key, updated, 0).Err(); err != nil {
			fmt.Printf("Failed to write %s: %v\n", key, err)
		} else {
			fmt.Printf("Backfilled %s\n", key)
		}
	}

	fmt.Println("\nBackfill complete!")
}
