package utils

import (
	"fmt"
	"time"
)

// GenerateEntryID id dérivé du timestamp, comme les entrées du cache local
func GenerateEntryID() string {
	return fmt.Sprintf("%d", time.Now().UnixMilli())
}
