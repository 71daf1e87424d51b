package config

import "time"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-users-api",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: 30 * time.Minute,
				AcquireTimeout:  30 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:  "127.0.0.1:8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			AuthRealm:    "users",
		},
		Workers: Workers{
			BlockingPoolSize: 16,
			QueueSize:        256,
		},
	}
}
