// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type OrphanedUploadEvent struct {
	UserRef     string    `json:"user_ref"`
	ObjectNames []string  `json:"object_names"`
	FailedAt    time.Time `json:"failed_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	objects := flag.String("objects", "", "comma-separated object names to clean up (defaults to generated test names)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	userRef := "test-user"
	names := []string{
		fmt.Sprintf("%s-front.jpg-%s", userRef, uuid.NewString()),
		fmt.Sprintf("%s-kitchen.jpg-%s", userRef, uuid.NewString()),
	}
	if *objects != "" {
		names = strings.Split(*objects, ",")
	}

	event := OrphanedUploadEvent{
		UserRef:     userRef,
		ObjectNames: names,
		FailedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:storage:cleanup",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:storage:cleanup\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   User: %s\n", event.UserRef)
	for _, name := range event.ObjectNames {
		fmt.Printf("   Object: %s\n", name)
	}
	fmt.Printf("\nWatch the worker log to confirm the objects get removed.\n")
}
