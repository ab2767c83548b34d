package redis

import (
	"fmt"

	"github.com/willolsker/cube-blast/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "cubeblast"

// gameKey returns the Redis key for a game session
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}
