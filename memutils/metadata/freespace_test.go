package metadata_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/memutils"
	"github.com/vkngwrapper/crucible/memutils/metadata"
)

func freeRegions(t *testing.T, m *metadata.FreeSpaceManager) [][2]int {
	var regions [][2]int
	err := m.VisitFreeRegions(func(offset, size int) error {
		regions = append(regions, [2]int{offset, size})
		return nil
	})
	require.NoError(t, err)
	return regions
}

func TestFreeSpaceBasicAlloc(t *testing.T) {
	m := metadata.NewFreeSpaceManager(1000)

	var stats memutils.DetailedStatistics
	stats.Clear()
	m.AddDetailedStatistics(&stats)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			PageCount: 1,
			PageBytes: 1000,
		},
		UnusedRangeCount:   1,
		AllocationSizeMin:  math.MaxInt,
		AllocationSizeMax:  0,
		UnusedRangeSizeMin: 1000,
		UnusedRangeSizeMax: 1000,
	}, stats)

	success, req, err := m.CreateAllocationRequest(100, 1)
	require.NoError(t, err)
	require.True(t, success)
	require.Equal(t, metadata.AllocationRequest{Offset: 0, Size: 100}, req)

	// Nothing is reserved until the request is committed
	require.Equal(t, 1000, m.SumFreeSize())
	require.True(t, m.IsEmpty())

	require.NoError(t, m.Alloc(req))
	require.NoError(t, m.Validate())

	var basic memutils.Statistics
	m.AddStatistics(&basic)
	require.Equal(t, memutils.Statistics{
		PageCount:       1,
		AllocationCount: 1,
		PageBytes:       1000,
		AllocationBytes: 100,
	}, basic)

	require.Equal(t, [][2]int{{100, 900}}, freeRegions(t, m))
	require.False(t, m.IsEmpty())

	require.NoError(t, m.Release(0, 100))
	require.NoError(t, m.Validate())
	require.True(t, m.IsEmpty())
	require.Equal(t, [][2]int{{0, 1000}}, freeRegions(t, m))
}

func TestFreeSpaceCoalesce(t *testing.T) {
	releaseOrders := map[string][2]int{
		"AThenB": {0, 1},
		"BThenA": {1, 0},
	}

	for name, order := range releaseOrders {
		t.Run(name, func(t *testing.T) {
			m := metadata.NewFreeSpaceManager(200)

			var reqs [2]metadata.AllocationRequest
			for i, size := range []int{100, 50} {
				success, req, err := m.Allocate(size, 1)
				require.NoError(t, err)
				require.True(t, success)
				reqs[i] = req
			}

			require.Equal(t, 0, reqs[0].Offset)
			require.Equal(t, 100, reqs[1].Offset)

			for _, index := range order {
				req := reqs[index]
				require.NoError(t, m.Release(req.ReservedOffset(), req.ReservedSize()))
				require.NoError(t, m.Validate())
			}

			require.Equal(t, [][2]int{{0, 200}}, freeRegions(t, m))
			require.Equal(t, 1, m.FreeRegionsCount())
		})
	}
}

func TestFreeSpaceMergeBothBoundaries(t *testing.T) {
	m := metadata.NewFreeSpaceManager(300)

	var reqs []metadata.AllocationRequest
	for i := 0; i < 3; i++ {
		success, req, err := m.Allocate(100, 1)
		require.NoError(t, err)
		require.True(t, success)
		reqs = append(reqs, req)
	}
	require.Equal(t, 0, m.FreeRegionsCount())

	require.NoError(t, m.Release(reqs[0].ReservedOffset(), reqs[0].ReservedSize()))
	require.NoError(t, m.Release(reqs[2].ReservedOffset(), reqs[2].ReservedSize()))
	require.Equal(t, [][2]int{{0, 100}, {200, 100}}, freeRegions(t, m))

	// The middle release touches free space on both sides
	require.NoError(t, m.Release(reqs[1].ReservedOffset(), reqs[1].ReservedSize()))
	require.Equal(t, [][2]int{{0, 300}}, freeRegions(t, m))
	require.NoError(t, m.Validate())
}

func TestFreeSpaceAlignment(t *testing.T) {
	m := metadata.NewFreeSpaceManager(1024)

	success, first, err := m.Allocate(10, 1)
	require.NoError(t, err)
	require.True(t, success)

	success, second, err := m.Allocate(64, 256)
	require.NoError(t, err)
	require.True(t, success)

	require.Equal(t, 256, second.Offset)
	require.Equal(t, 246, second.LeftPadding)
	require.Equal(t, 0, second.FreeRegionIndex)
	require.Equal(t, 10, second.ReservedOffset())
	require.Equal(t, 310, second.ReservedSize())

	require.Equal(t, 1024-10-310, m.SumFreeSize())
	require.Equal(t, [][2]int{{320, 704}}, freeRegions(t, m))

	require.NoError(t, m.Release(first.ReservedOffset(), first.ReservedSize()))
	require.NoError(t, m.Release(second.ReservedOffset(), second.ReservedSize()))
	require.Equal(t, [][2]int{{0, 1024}}, freeRegions(t, m))
}

func TestFreeSpaceAlignmentSkipsSmallRegion(t *testing.T) {
	m := metadata.NewFreeSpaceManager(512)

	_, _, err := m.Allocate(20, 1)
	require.NoError(t, err)
	_, a, err := m.Allocate(100, 1)
	require.NoError(t, err)
	_, _, err = m.Allocate(100, 1)
	require.NoError(t, err)
	require.NoError(t, m.Release(a.ReservedOffset(), a.ReservedSize()))
	require.Equal(t, [][2]int{{20, 100}, {220, 292}}, freeRegions(t, m))

	// [20, 120) is large enough for 80 bytes but not once aligned to 128
	success, req, err := m.Allocate(80, 128)
	require.NoError(t, err)
	require.True(t, success)
	require.Equal(t, 256, req.Offset)
	require.Equal(t, 36, req.LeftPadding)
	require.Equal(t, 1, req.FreeRegionIndex)
}

func TestFreeSpaceFull(t *testing.T) {
	m := metadata.NewFreeSpaceManager(256)

	success, _, err := m.Allocate(256, 1)
	require.NoError(t, err)
	require.True(t, success)

	success, _, err = m.Allocate(1, 1)
	require.NoError(t, err)
	require.False(t, success)

	success, _, err = metadata.NewFreeSpaceManager(256).Allocate(257, 1)
	require.NoError(t, err)
	require.False(t, success)
}

func TestFreeSpaceInvalidArguments(t *testing.T) {
	m := metadata.NewFreeSpaceManager(256)

	_, _, err := m.CreateAllocationRequest(0, 1)
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	_, _, err = m.CreateAllocationRequest(16, 24)
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))

	success, _, err := m.CreateAllocationRequest(16, 0)
	require.NoError(t, err)
	require.True(t, success)
}

func TestFreeSpaceStaleRequest(t *testing.T) {
	m := metadata.NewFreeSpaceManager(256)

	_, req, err := m.CreateAllocationRequest(200, 1)
	require.NoError(t, err)

	_, _, err = m.Allocate(100, 1)
	require.NoError(t, err)

	err = m.Alloc(req)
	require.True(t, errors.Is(err, crucible.ErrInvalidState))
	require.Equal(t, 156, m.SumFreeSize())
	require.Equal(t, 1, m.AllocationCount())
}

func TestFreeSpaceBadRelease(t *testing.T) {
	m := metadata.NewFreeSpaceManager(256)

	_, req, err := m.Allocate(64, 1)
	require.NoError(t, err)
	require.NoError(t, m.Release(req.ReservedOffset(), req.ReservedSize()))

	err = m.Release(req.ReservedOffset(), req.ReservedSize())
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	err = m.Release(250, 10)
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	err = m.Release(-1, 10)
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	require.NoError(t, m.Validate())
	require.Equal(t, [][2]int{{0, 256}}, freeRegions(t, m))
}

func TestFreeSpaceReleaseFindsNeighbors(t *testing.T) {
	m := metadata.NewFreeSpaceManager(400)

	offsets := make([]int, 4)
	for i := range offsets {
		_, req, err := m.Allocate(100, 1)
		require.NoError(t, err)
		offsets[i] = req.ReservedOffset()
	}
	require.Equal(t, []int{0, 100, 200, 300}, offsets)

	require.NoError(t, m.Release(0, 100))
	require.NoError(t, m.Release(200, 100))
	require.Equal(t, [][2]int{{0, 100}, {200, 100}}, freeRegions(t, m))

	// Starting exactly on a free region
	err := m.Release(200, 50)
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	// Running into the next free region
	err = m.Release(150, 60)
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	// Starting inside the previous free region
	err = m.Release(50, 60)
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	require.NoError(t, m.Release(100, 100))
	require.Equal(t, [][2]int{{0, 300}}, freeRegions(t, m))

	require.NoError(t, m.Release(300, 100))
	require.Equal(t, [][2]int{{0, 400}}, freeRegions(t, m))
	require.NoError(t, m.Validate())
}

func TestFreeSpaceRandomConservation(t *testing.T) {
	const pageSize = 1 << 16
	random := rand.New(rand.NewSource(1))
	m := metadata.NewFreeSpaceManager(pageSize)

	var live []metadata.AllocationRequest
	for iteration := 0; iteration < 2000; iteration++ {
		if len(live) > 0 && random.Intn(3) == 0 {
			index := random.Intn(len(live))
			req := live[index]
			live = append(live[:index], live[index+1:]...)

			require.NoError(t, m.Release(req.ReservedOffset(), req.ReservedSize()))
		} else {
			size := random.Intn(1024) + 1
			alignment := uint(1) << uint(random.Intn(9))

			success, req, err := m.Allocate(size, alignment)
			require.NoError(t, err)
			if success {
				require.Zero(t, req.Offset%int(alignment))
				require.Equal(t, size, req.Size)
				live = append(live, req)
			}
		}

		require.NoError(t, m.Validate())

		reserved := 0
		for _, req := range live {
			reserved += req.ReservedSize()
		}
		require.Equal(t, pageSize, m.SumFreeSize()+reserved)
		require.Equal(t, len(live), m.AllocationCount())

		for i := 0; i < len(live); i++ {
			for j := i + 1; j < len(live); j++ {
				a, b := live[i], live[j]
				overlap := a.ReservedOffset() < b.Offset+b.Size && b.ReservedOffset() < a.Offset+a.Size
				require.False(t, overlap, "%s overlaps %s", a, b)
			}
		}
	}

	for _, req := range live {
		require.NoError(t, m.Release(req.ReservedOffset(), req.ReservedSize()))
	}
	require.True(t, m.IsEmpty())
	require.Equal(t, [][2]int{{0, pageSize}}, freeRegions(t, m))
}

func TestFreeSpaceJson(t *testing.T) {
	m := metadata.NewFreeSpaceManager(200)
	_, _, err := m.Allocate(100, 1)
	require.NoError(t, err)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	m.BlockJsonData(obj)
	obj.End()

	require.NoError(t, writer.Error())
	require.JSONEq(t, `{
		"TotalBytes": 200,
		"UnusedBytes": 100,
		"Allocations": 1,
		"UnusedRanges": 1,
		"FreeRegions": [{"Offset": 100, "Size": 100}]
	}`, string(writer.Bytes()))

	require.Equal(t, "FreeSpaceManager{size: 200, allocations: 1, free: [100, 200)}", m.String())
}
