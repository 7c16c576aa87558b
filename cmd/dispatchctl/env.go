package main

import (
	"os"
	"time"
)

// zeroDeadline lets control frames wait on the write lock indefinitely.
var zeroDeadline time.Time

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
