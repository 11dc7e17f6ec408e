package metadata

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/memutils"
	"golang.org/x/exp/slices"
)

// FreeSpaceManager tracks the free byte ranges of a single page of memory. Free regions are
// stored as two parallel slices sorted by offset. Two free regions are never adjacent: every
// release merges the freed range with its neighbors on both sides.
//
// Allocation is first-fit: the lowest-offset free region that can hold the aligned allocation
// is used and the allocation is carved from its front. Any padding introduced by the alignment
// is charged to the allocation, so the reserved range of an allocation is
// [Offset-LeftPadding, Offset+Size).
//
// FreeSpaceManager does not know about individual allocations. Callers must remember the reserved
// range of each allocation and pass it back to Release.
type FreeSpaceManager struct {
	size        int
	offsets     []int
	sizes       []int
	sumFreeSize int

	allocationCount int
}

// NewFreeSpaceManager creates a FreeSpaceManager for a page of the provided size in bytes, with
// the entire page free
func NewFreeSpaceManager(size int) *FreeSpaceManager {
	m := &FreeSpaceManager{}
	m.Init(size)
	return m
}

// Init resets the manager to a single free region covering size bytes
func (m *FreeSpaceManager) Init(size int) {
	m.size = size
	m.offsets = m.offsets[:0]
	m.sizes = m.sizes[:0]
	m.sumFreeSize = size
	m.allocationCount = 0

	if size > 0 {
		m.offsets = append(m.offsets, 0)
		m.sizes = append(m.sizes, size)
	}
}

// Size returns the size in bytes of the managed page
func (m *FreeSpaceManager) Size() int { return m.size }

// SumFreeSize returns the number of free bytes in the page
func (m *FreeSpaceManager) SumFreeSize() int { return m.sumFreeSize }

// FreeRegionsCount returns the number of distinct free regions in the page
func (m *FreeSpaceManager) FreeRegionsCount() int { return len(m.offsets) }

// AllocationCount returns the number of allocations that have been committed and not yet released
func (m *FreeSpaceManager) AllocationCount() int { return m.allocationCount }

// IsEmpty returns true if there are no live allocations in the page
func (m *FreeSpaceManager) IsEmpty() bool {
	return m.allocationCount == 0
}

// CreateAllocationRequest looks for space for an allocation of allocSize bytes whose offset is a
// multiple of allocAlignment. The manager is not modified. If no free region can hold the allocation,
// false is returned with a nil error and the caller is expected to look elsewhere.
func (m *FreeSpaceManager) CreateAllocationRequest(allocSize int, allocAlignment uint) (bool, AllocationRequest, error) {
	if allocSize <= 0 {
		return false, AllocationRequest{}, errors.Wrapf(crucible.ErrInvalidArgument, "allocation size must be greater than 0, but was %d", allocSize)
	}

	err := memutils.CheckPow2(allocAlignment, "alignment")
	if err != nil {
		return false, AllocationRequest{}, errors.Mark(err, crucible.ErrInvalidArgument)
	}

	if allocSize > m.sumFreeSize {
		return false, AllocationRequest{}, nil
	}

	for regionIndex, regionOffset := range m.offsets {
		regionSize := m.sizes[regionIndex]
		if regionSize < allocSize {
			continue
		}

		start := memutils.AlignUp(regionOffset, allocAlignment)
		padding := start - regionOffset

		if padding+allocSize <= regionSize {
			return true, AllocationRequest{
				Offset:          start,
				Size:            allocSize,
				LeftPadding:     padding,
				FreeRegionIndex: regionIndex,
			}, nil
		}
	}

	return false, AllocationRequest{}, nil
}

// Alloc commits a request returned by CreateAllocationRequest. If the manager has changed since the
// request was created in a way that invalidates it, an error wrapping crucible.ErrInvalidState is returned
// and nothing is modified.
func (m *FreeSpaceManager) Alloc(request AllocationRequest) error {
	regionIndex := request.FreeRegionIndex
	if regionIndex < 0 || regionIndex >= len(m.offsets) {
		return errors.Wrapf(crucible.ErrInvalidState, "free region %d does not exist", regionIndex)
	}

	reservedOffset := request.ReservedOffset()
	reservedSize := request.ReservedSize()

	if m.offsets[regionIndex] != reservedOffset || m.sizes[regionIndex] < reservedSize {
		return errors.Wrapf(crucible.ErrInvalidState, "%s no longer fits free region [%d, %d)",
			request, m.offsets[regionIndex], m.offsets[regionIndex]+m.sizes[regionIndex])
	}

	if m.sizes[regionIndex] == reservedSize {
		m.offsets = slices.Delete(m.offsets, regionIndex, regionIndex+1)
		m.sizes = slices.Delete(m.sizes, regionIndex, regionIndex+1)
	} else {
		m.offsets[regionIndex] += reservedSize
		m.sizes[regionIndex] -= reservedSize
	}

	m.sumFreeSize -= reservedSize
	m.allocationCount++

	memutils.DebugValidate(m)
	return nil
}

// Allocate finds space for an allocation and commits it in one step. The boolean return value is
// false when the page does not have room for the allocation.
func (m *FreeSpaceManager) Allocate(allocSize int, allocAlignment uint) (bool, AllocationRequest, error) {
	success, request, err := m.CreateAllocationRequest(allocSize, allocAlignment)
	if err != nil || !success {
		return success, request, err
	}

	err = m.Alloc(request)
	if err != nil {
		return false, AllocationRequest{}, err
	}

	return true, request, nil
}

// Release returns the range [offset, offset+size) to the free space. size must include any left padding
// that was charged to the allocation. The freed range is merged with the free regions that end at
// offset or begin at offset+size.
//
// Ranges that fall outside the page or overlap free space are rejected with an error wrapping
// crucible.ErrInvalidArgument.
func (m *FreeSpaceManager) Release(offset, size int) error {
	if size <= 0 || offset < 0 || offset+size > m.size {
		return errors.Wrapf(crucible.ErrInvalidArgument, "range [%d, %d) is not inside a page of %d bytes", offset, offset+size, m.size)
	}

	// Index of the first free region that starts after offset
	next, _ := slices.BinarySearchFunc(m.offsets, offset, func(regionOffset, target int) int {
		if regionOffset <= target {
			return -1
		}
		return 1
	})
	prev := next - 1
	end := offset + size

	if prev >= 0 && m.offsets[prev]+m.sizes[prev] > offset {
		return errors.Wrapf(crucible.ErrInvalidArgument, "range [%d, %d) overlaps free region [%d, %d)",
			offset, end, m.offsets[prev], m.offsets[prev]+m.sizes[prev])
	}

	if next < len(m.offsets) && m.offsets[next] < end {
		return errors.Wrapf(crucible.ErrInvalidArgument, "range [%d, %d) overlaps free region [%d, %d)",
			offset, end, m.offsets[next], m.offsets[next]+m.sizes[next])
	}

	mergePrev := prev >= 0 && m.offsets[prev]+m.sizes[prev] == offset
	mergeNext := next < len(m.offsets) && m.offsets[next] == end

	switch {
	case mergePrev && mergeNext:
		m.sizes[prev] += size + m.sizes[next]
		m.offsets = slices.Delete(m.offsets, next, next+1)
		m.sizes = slices.Delete(m.sizes, next, next+1)
	case mergePrev:
		m.sizes[prev] += size
	case mergeNext:
		m.offsets[next] = offset
		m.sizes[next] += size
	default:
		m.offsets = slices.Insert(m.offsets, next, offset)
		m.sizes = slices.Insert(m.sizes, next, size)
	}

	m.sumFreeSize += size
	if m.allocationCount > 0 {
		m.allocationCount--
	}

	memutils.DebugValidate(m)
	return nil
}

// VisitFreeRegions calls the provided callback once for each free region, in offset order. If the
// callback returns an error, iteration stops and the error is returned.
func (m *FreeSpaceManager) VisitFreeRegions(visit func(offset, size int) error) error {
	for i, offset := range m.offsets {
		err := visit(offset, m.sizes[i])
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate performs internal consistency checks on the free regions
func (m *FreeSpaceManager) Validate() error {
	if len(m.offsets) != len(m.sizes) {
		return errors.Errorf("there are %d free region offsets but %d free region sizes", len(m.offsets), len(m.sizes))
	}

	var sumFree int
	lastEnd := -1
	for i, offset := range m.offsets {
		size := m.sizes[i]

		if size <= 0 {
			return errors.Errorf("free region %d at offset %d has non-positive size %d", i, offset, size)
		}

		if offset < 0 || offset+size > m.size {
			return errors.Errorf("free region %d [%d, %d) is outside a page of %d bytes", i, offset, offset+size, m.size)
		}

		if offset < lastEnd {
			return errors.Errorf("free region %d at offset %d overlaps or precedes the previous region, which ends at %d", i, offset, lastEnd)
		}

		if offset == lastEnd {
			return errors.Errorf("free region %d at offset %d is adjacent to the previous region and should have been merged", i, offset)
		}

		sumFree += size
		lastEnd = offset + size
	}

	if sumFree != m.sumFreeSize {
		return errors.Errorf("free regions add up to %d bytes, but the manager believes %d bytes are free", sumFree, m.sumFreeSize)
	}

	if m.allocationCount == 0 && m.sumFreeSize != m.size {
		return errors.Errorf("there are no live allocations but only %d of %d bytes are free", m.sumFreeSize, m.size)
	}

	return nil
}

// AddStatistics sums this page's statistics into stats
func (m *FreeSpaceManager) AddStatistics(stats *memutils.Statistics) {
	stats.PageCount++
	stats.PageBytes += m.size
	stats.AllocationCount += m.allocationCount
	stats.AllocationBytes += m.size - m.sumFreeSize
}

// AddDetailedStatistics sums the page and its free regions into stats. Allocations are not
// added, because the manager does not know their individual sizes. The owner of the page is
// expected to call stats.AddAllocation for each of them.
func (m *FreeSpaceManager) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	stats.PageCount++
	stats.PageBytes += m.size

	for _, size := range m.sizes {
		stats.AddUnusedRange(size)
	}
}

// BlockJsonData populates a json object with information about this page and its free regions
func (m *FreeSpaceManager) BlockJsonData(json jwriter.ObjectState) {
	json.Name("TotalBytes").Int(m.size)
	json.Name("UnusedBytes").Int(m.sumFreeSize)
	json.Name("Allocations").Int(m.allocationCount)
	json.Name("UnusedRanges").Int(len(m.offsets))

	regions := json.Name("FreeRegions").Array()
	defer regions.End()

	for i, offset := range m.offsets {
		obj := regions.Object()
		obj.Name("Offset").Int(offset)
		obj.Name("Size").Int(m.sizes[i])
		obj.End()
	}
}

func (m *FreeSpaceManager) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FreeSpaceManager{size: %d, allocations: %d, free:", m.size, m.allocationCount)
	for i, offset := range m.offsets {
		fmt.Fprintf(&sb, " [%d, %d)", offset, offset+m.sizes[i])
	}
	sb.WriteString("}")
	return sb.String()
}
