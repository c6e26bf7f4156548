// Package dotenv подгружает .env для локального запуска. В контейнерах
// переменные приходят из окружения и файл не обязателен.
package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "HTTP port (overrides PORT env variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("override PORT: %w", err)
		}
	}

	return nil
}
