package redis

import (
	"fmt"

	"github.com/mcoot/golfscore/internal/model"
)

// Key prefix for all golfscore data
const keyPrefix = "golfscore"

// courseKey returns the Redis key for a Course
func courseKey(id string) string {
	return fmt.Sprintf("%s:course:%s", keyPrefix, id)
}

// coursesIndexKey returns the Redis key for the SET of all course keys
func coursesIndexKey() string {
	return fmt.Sprintf("%s:idx:courses", keyPrefix)
}

// roundKey returns the Redis key for a RoundState
func roundKey(id model.RoundID) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, id)
}

// settlementKey returns the Redis key for a round's Settlement
func settlementKey(roundID model.RoundID) string {
	return fmt.Sprintf("%s:settlement:%s", keyPrefix, roundID)
}
