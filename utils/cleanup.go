package utils

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

const (
	maxRetries = 3
	retryDelay = 5 * time.Minute
)

// CleanupExpiredReports removes generated error-report workbooks older than
// maxAge and drops any Redis keys still pointing at them.
func CleanupExpiredReports(maxAge time.Duration, redisClient *redis.Client) error {
	entries, err := os.ReadDir(reportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(reportDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("failed to remove expired report %s: %v", path, err)
			continue
		}

		if redisClient != nil {
			if err := redisClient.Del(context.Background(), "report:"+entry.Name()).Err(); err != nil {
				log.Printf("failed to drop redis key for %s: %v", entry.Name(), err)
			}
		}
	}
	return nil
}

// RunScheduledCleanup runs the report cleanup daily at 1 AM with retries and
// logs error messages to console on failure
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled report cleanup task...")

		var retries int
		var cleanupSuccess bool

		for retries < maxRetries {
			log.Printf("attempt %d to clean up...", retries+1)
			err := CleanupExpiredReports(7*24*time.Hour, redisClient)
			if err == nil {
				log.Println("cleanup successful!")
				cleanupSuccess = true
				break
			}
			log.Printf("cleanup failed: %v", err)
			retries++
			time.Sleep(retryDelay)
		}

		if !cleanupSuccess {
			log.Printf("cleanup task failed after %d retries. please check the system.", retries)
		}
	})

	c.Start()
}
