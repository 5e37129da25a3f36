// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates an in-process Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:           "test-api",
			Environment:    "test",
			Version:        "test",
			LogLevel:       "debug",
			LogFormat:      "text",
			Debug:          true,
			SeedSampleData: true,
		},
		Store: config.StoreConfig{
			Driver: config.StoreMemory,
		},
		Redis: config.RedisConfig{
			Host:      "localhost",
			Port:      "6379",
			DB:        0,
			KeyPrefix: "test",
			PoolSize:  10,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:              "localhost",
			Port:              "8080",
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			EnableMetrics:     true,
			EnableHealthCheck: true,
			StaticDir:         "static",
			IndexFile:         "index.html",
		},
	}
}

// CreateTestPhone creates a valid, listable test phone
func CreateTestPhone(overrides ...func(*domain.Phone)) *domain.Phone {
	phone := &domain.Phone{
		ID:        "phone-test",
		Model:     "Test Pixel 7",
		BaseCost:  decimal.NewFromFloat(300.00),
		Condition: domain.ConditionGood,
		Stock:     2,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(phone)
	}

	return phone
}

// CreateTestPhones creates count phones with distinct ids and models
func CreateTestPhones(count int) []domain.Phone {
	phones := make([]domain.Phone, count)

	conditions := domain.ConditionGrades()

	for i := 0; i < count; i++ {
		phones[i] = *CreateTestPhone(func(p *domain.Phone) {
			p.ID = fmt.Sprintf("phone-%03d", i+1)
			p.Model = fmt.Sprintf("Test Phone %d", i+1)
			p.Condition = conditions[i%len(conditions)]
			p.BaseCost = decimal.NewFromFloat(float64(100 + (i * 50)))
		})
	}

	return phones
}
