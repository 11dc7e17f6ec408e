package memory

import (
	"context"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/memutils"
	"github.com/vkngwrapper/crucible/memutils/metadata"
	"golang.org/x/exp/slog"
)

// Page is one device memory allocation subdivided among many resources. Pages are owned by their
// Pool and referred to by index, and only the pool frees their memory.
//
// Page methods are not synchronized; the owning pool holds its lock around every call.
type Page struct {
	index     int
	mappable  bool
	memory    driver.DeviceMemory
	freeSpace *metadata.FreeSpaceManager
	logger    *slog.Logger

	// reserved offset -> reserved size of each live allocation
	allocations *swiss.Map[int, int]
	// mapped offset -> mapped size of each live host mapping
	mappings *swiss.Map[int, int]

	mapReferences int
	mapData       unsafe.Pointer

	freed bool
}

func newPage(logger *slog.Logger, index int, memory driver.DeviceMemory, size int, mappable bool) *Page {
	return &Page{
		index:       index,
		mappable:    mappable,
		memory:      memory,
		freeSpace:   metadata.NewFreeSpaceManager(size),
		logger:      logger,
		allocations: swiss.NewMap[int, int](8),
		mappings:    swiss.NewMap[int, int](2),
	}
}

func (p *Page) Index() int { return p.index }

// Size is the capacity of the page in bytes
func (p *Page) Size() int { return p.freeSpace.Size() }

func (p *Page) SumFreeSize() int { return p.freeSpace.SumFreeSize() }

func (p *Page) AllocationCount() int { return p.allocations.Count() }

func (p *Page) IsEmpty() bool { return p.allocations.Count() == 0 }

// IsMapped returns true while at least one host mapping into the page is live
func (p *Page) IsMapped() bool { return p.mapReferences > 0 }

// Memory returns the page's device memory, or nil once the page has been freed
func (p *Page) Memory() driver.DeviceMemory {
	if p.freed {
		return nil
	}
	return p.memory
}

func (p *Page) allocate(size int, alignment uint) (bool, AllocationInfo, error) {
	memutils.DebugCheckPow2(alignment, "alignment")

	success, request, err := p.freeSpace.Allocate(size, alignment)
	if err != nil || !success {
		return false, AllocationInfo{}, err
	}

	p.allocations.Put(request.ReservedOffset(), request.ReservedSize())
	return true, AllocationInfo{
		Page:        p.index,
		Offset:      request.Offset,
		Size:        request.Size,
		LeftPadding: request.LeftPadding,
	}, nil
}

func (p *Page) release(info AllocationInfo) error {
	reservedSize, ok := p.allocations.Get(info.ReservedOffset())
	if !ok || reservedSize != info.ReservedSize() {
		return errors.Wrapf(crucible.ErrInvalidArgument, "allocation %s is not live in page %d", info, p.index)
	}

	err := p.freeSpace.Release(info.ReservedOffset(), info.ReservedSize())
	if err != nil {
		return err
	}

	p.allocations.Delete(info.ReservedOffset())
	return nil
}

func (p *Page) mapRange(offset, size int) (unsafe.Pointer, error) {
	if !p.mappable {
		return nil, errors.Wrapf(crucible.ErrInvalidState, "page %d is not host visible", p.index)
	}

	var conflict error
	p.mappings.Iter(func(mappedOffset, mappedSize int) bool {
		if mappedOffset < offset+size && offset < mappedOffset+mappedSize {
			conflict = errors.Wrapf(crucible.ErrMappingConflict, "range [%d, %d) of page %d overlaps the live mapping [%d, %d)",
				offset, offset+size, p.index, mappedOffset, mappedOffset+mappedSize)
			return true
		}
		return false
	})
	if conflict != nil {
		return nil, conflict
	}

	if p.mapReferences == 0 {
		data, err := p.memory.Map(0, p.Size())
		if err != nil {
			return nil, err
		}
		p.mapData = data
	} else if p.mapData == nil {
		return nil, errors.Errorf("page %d shows %d mapping references but no mapped memory", p.index, p.mapReferences)
	}

	p.mapReferences++
	p.mappings.Put(offset, size)
	return unsafe.Add(p.mapData, offset), nil
}

func (p *Page) unmapRange(offset int) error {
	if !p.mappings.Has(offset) {
		return errors.Wrapf(crucible.ErrInvalidState, "page %d has no live mapping at offset %d", p.index, offset)
	}

	p.mappings.Delete(offset)
	p.mapReferences--
	if p.mapReferences == 0 {
		p.memory.Unmap()
		p.mapData = nil
	}

	return nil
}

func (p *Page) free() {
	if p.freed {
		panic("attempting to free a memory page that was already freed")
	}

	if p.mapReferences > 0 {
		p.memory.Unmap()
		p.mapData = nil
		p.mapReferences = 0
		p.mappings.Clear()
	}

	p.memory.Free()
	p.freed = true
}

func (p *Page) logUnreleasedAllocations() {
	p.allocations.Iter(func(offset, size int) bool {
		p.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] unreleased allocation",
			slog.Int("page", p.index),
			slog.Int("offset", offset),
			slog.Int("size", size),
		)
		return false
	})
}

func (p *Page) addDetailedStatistics(stats *memutils.DetailedStatistics) {
	p.freeSpace.AddDetailedStatistics(stats)
	p.allocations.Iter(func(offset, size int) bool {
		stats.AddAllocation(size)
		return false
	})
}

func (p *Page) validate() error {
	if p.freed {
		return errors.Errorf("page %d has been freed", p.index)
	}

	err := p.freeSpace.Validate()
	if err != nil {
		return errors.Wrapf(err, "page %d", p.index)
	}

	if p.allocations.Count() != p.freeSpace.AllocationCount() {
		return errors.Errorf("page %d tracks %d allocations but its free space manager counts %d",
			p.index, p.allocations.Count(), p.freeSpace.AllocationCount())
	}

	var reserved int
	p.allocations.Iter(func(offset, size int) bool {
		reserved += size
		return false
	})
	if reserved+p.freeSpace.SumFreeSize() != p.Size() {
		return errors.Errorf("page %d has %d reserved and %d free bytes, which do not add up to its size of %d",
			p.index, reserved, p.freeSpace.SumFreeSize(), p.Size())
	}

	if p.mappings.Count() != p.mapReferences {
		return errors.Errorf("page %d has %d live mappings but %d mapping references", p.index, p.mappings.Count(), p.mapReferences)
	}

	return nil
}

func (p *Page) printJson(json jwriter.ObjectState) {
	json.Name("Index").Int(p.index)
	json.Name("MapReferences").Int(p.mapReferences)
	p.freeSpace.BlockJsonData(json)
}
