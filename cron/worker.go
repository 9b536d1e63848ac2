package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"screenline/config"
	"screenline/models"
	"screenline/services/crm"
	"screenline/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitLeadWorker runs the async lead-delivery worker in background.
func InitLeadWorker(sink crm.Sink) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLeadQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDeliverLead, handleDeliverLeadTask(sink))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[LeadWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[LeadWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[LeadWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleDeliverLeadTask(sink crm.Sink) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var lead models.Lead
		if err := json.Unmarshal(task.Payload(), &lead); err != nil {
			log.Printf("[LeadHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[LeadHandler] Delivering lead %s (%s, %d screens)", lead.ID, lead.Phone, lead.Screens)

		if err := sink.Submit(ctx, lead); err != nil {
			log.Printf("[LeadHandler] Failed to deliver lead %s: %v", lead.ID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLeadQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[LeadWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
