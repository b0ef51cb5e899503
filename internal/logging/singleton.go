package logging

import (
	"sync"
)

var (
	mu       sync.RWMutex
	instance *Logger
)

// InitLogger initializes the process-wide logger. Calling it again replaces
// and closes the previous instance.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetGlobalLogger returns the logger initialized by InitLogger.
// It panics when called before initialization.
func GetGlobalLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("logging: InitLogger must be called before GetGlobalLogger")
	}
	return instance
}
