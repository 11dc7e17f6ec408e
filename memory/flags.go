package memory

import "github.com/vkngwrapper/core/v2/common"

type PoolCreateFlags int32

var poolCreateFlagsMapping = common.NewFlagStringMapping[PoolCreateFlags]()

func (f PoolCreateFlags) Register(str string) {
	poolCreateFlagsMapping.Register(f, str)
}
func (f PoolCreateFlags) String() string {
	return poolCreateFlagsMapping.FlagsToString(f)
}

const (
	// PoolCreateExternallySynchronized disables the pool's internal mutex. The consumer must
	// guarantee that the pool and every resource created from it are used from one goroutine at
	// a time.
	PoolCreateExternallySynchronized PoolCreateFlags = 1 << iota
)

func init() {
	PoolCreateExternallySynchronized.Register("PoolCreateExternallySynchronized")
}

// CreateOptions configures a Pool
type CreateOptions struct {
	Flags PoolCreateFlags
	// PageSize is the size in bytes of each page the pool allocates. Allocations larger than
	// PageSize get a page of their own size. 0 gives every allocation an exactly-sized page.
	PageSize int
}
