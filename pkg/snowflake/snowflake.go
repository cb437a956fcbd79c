package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 主题/帖子等实体的全局递增ID
func GenID() int64 {
	return node.Generate().Int64()
}
