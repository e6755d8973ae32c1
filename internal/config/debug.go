package config

import "os"

func IsDebug() bool {
	return os.Getenv("TARICTL_DEBUG") == "1"
}
