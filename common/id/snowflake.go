package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// It must be called once at startup before any call to New.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
// IDs are time-ordered, so rows created later always carry larger IDs.
func New() int64 {
	return node.Generate().Int64()
}
