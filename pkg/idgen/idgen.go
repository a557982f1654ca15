// Package idgen hands out process-unique int64 identifiers for bills and
// bill line items. IDs are snowflakes: time-ordered, never reused, and unique
// per node as long as each running process is given its own NODE_ID.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique int64 IDs.
type Generator interface {
	Next() int64
}

// Snowflake is a Generator backed by a bwmarrin/snowflake node.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a Generator for the given node number (0–1023).
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("idgen: new snowflake node %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// Next returns a fresh ID. Safe for concurrent use.
func (s *Snowflake) Next() int64 {
	return s.node.Generate().Int64()
}
