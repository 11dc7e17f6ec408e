package memory

import (
	"context"
	"strconv"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/internal/utils"
	"github.com/vkngwrapper/crucible/memutils"
	"golang.org/x/exp/slog"
)

// Pool is a growable set of pages of one memory type. Buffers and images created from the pool are
// placed first-fit in its existing pages, and a new page is allocated when none of them has room.
// Pages are never returned to the device while the pool is alive.
type Pool struct {
	logger *slog.Logger
	device driver.ResourceDevice
	mutex  utils.OptionalRWMutex

	propertyFlags   core1_0.MemoryPropertyFlags
	memoryTypeIndex int
	pageSize        int
	granularity     uint

	pages     []*Page
	destroyed bool
}

// NewPool creates a pool over the first device memory type whose property flags include flags. No
// device memory is allocated until the first resource is created.
func NewPool(logger *slog.Logger, device driver.ResourceDevice, flags core1_0.MemoryPropertyFlags, options CreateOptions) (*Pool, error) {
	if options.PageSize < 0 {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "page size must not be negative, got %d", options.PageSize)
	}

	memoryTypeIndex := -1
	var propertyFlags core1_0.MemoryPropertyFlags
	for index, memoryType := range device.MemoryTypes() {
		if memoryType.PropertyFlags&flags == flags {
			memoryTypeIndex = index
			propertyFlags = memoryType.PropertyFlags
			break
		}
	}

	if memoryTypeIndex < 0 {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "no memory type has property flags %s", flags)
	}

	granularity := device.BufferImageGranularity()
	if granularity < 1 {
		granularity = 1
	}
	err := memutils.CheckPow2(granularity, "device bufferImageGranularity")
	if err != nil {
		return nil, errors.Mark(err, crucible.ErrInvalidArgument)
	}

	logger.Debug("Pool::NewPool",
		slog.Int("MemoryTypeIndex", memoryTypeIndex),
		slog.String("PropertyFlags", propertyFlags.String()),
		slog.Int("PageSize", options.PageSize))

	return &Pool{
		logger: logger,
		device: device,
		mutex:  utils.NewOptionalRWMutex(options.Flags&PoolCreateExternallySynchronized == 0),

		propertyFlags:   propertyFlags,
		memoryTypeIndex: memoryTypeIndex,
		pageSize:        options.PageSize,
		granularity:     uint(granularity),
	}, nil
}

// PropertyFlags returns the full property flags of the pool's memory type, which may include more
// than the flags the pool was requested with
func (p *Pool) PropertyFlags() core1_0.MemoryPropertyFlags { return p.propertyFlags }

func (p *Pool) MemoryTypeIndex() int { return p.memoryTypeIndex }

// PageSize returns the configured page size. 0 means every allocation gets its own page.
func (p *Pool) PageSize() int { return p.pageSize }

func (p *Pool) PageCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return len(p.pages)
}

// Page returns the page at the provided index
func (p *Pool) Page(index int) (*Page, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if index < 0 || index >= len(p.pages) {
		return nil, errors.Wrapf(crucible.ErrKeyNotFound, "pool has no page %d", index)
	}
	return p.pages[index], nil
}

// IsMappable returns true if the pool's memory is host visible
func (p *Pool) IsMappable() bool {
	return p.propertyFlags&core1_0.MemoryPropertyHostVisible != 0
}

// IsPageMappable returns true if the pool is mappable and the page exists and currently has no live
// host mapping
func (p *Pool) IsPageMappable(page int) bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if page < 0 || page >= len(p.pages) {
		return false
	}

	return p.IsMappable() && !p.pages[page].IsMapped()
}

// Allocate reserves space for a resource with the provided requirements. The space must be returned
// with Release. Allocation failures inside existing pages cause a new page to be allocated, and only
// a failure of the device to provide that page is reported, as crucible.ErrOutOfDeviceMemory.
func (p *Pool) Allocate(requirements driver.MemoryRequirements) (AllocationInfo, error) {
	if requirements.Size <= 0 {
		return AllocationInfo{}, errors.Wrapf(crucible.ErrInvalidArgument, "allocation size must be greater than 0, got %d", requirements.Size)
	}

	if !requirements.SupportsMemoryType(p.memoryTypeIndex) {
		return AllocationInfo{}, errors.Wrapf(crucible.ErrInvalidArgument, "resource memory type bits %#x do not include the pool's memory type %d",
			requirements.MemoryTypeBits, p.memoryTypeIndex)
	}

	alignment := memutils.Max(requirements.Alignment, p.granularity)
	err := memutils.CheckPow2(alignment, "alignment")
	if err != nil {
		return AllocationInfo{}, errors.Mark(err, crucible.ErrInvalidArgument)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		return AllocationInfo{}, errors.Wrap(crucible.ErrInvalidState, "the pool has been destroyed")
	}

	p.logger.Debug("Pool::Allocate", slog.Int("size", requirements.Size), slog.Int("alignment", int(alignment)))

	for _, page := range p.pages {
		success, info, err := page.allocate(requirements.Size, alignment)
		if err != nil {
			return AllocationInfo{}, err
		}

		if success {
			p.logger.LogAttrs(context.Background(), slog.LevelDebug, "    Returned from existing page", slog.Int("page", page.index))
			return info, nil
		}
	}

	page, err := p.allocatePage(requirements.Size)
	if err != nil {
		return AllocationInfo{}, err
	}

	success, info, err := page.allocate(requirements.Size, alignment)
	if err != nil {
		return AllocationInfo{}, err
	}
	if !success {
		panic("a newly allocated page could not hold the allocation it was sized for")
	}

	return info, nil
}

func (p *Pool) allocatePage(size int) (*Page, error) {
	pageSize := size
	if p.pageSize > 0 {
		pageSize = memutils.Max(p.pageSize, size)
	}

	p.logger.Debug("Pool::allocatePage", slog.Int("MemoryTypeIndex", p.memoryTypeIndex), slog.Int("size", pageSize))

	memory, err := p.device.AllocateMemory(p.memoryTypeIndex, pageSize)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to allocate a page of %d bytes", pageSize), crucible.ErrOutOfDeviceMemory)
	}

	page := newPage(p.logger, len(p.pages), memory, pageSize, p.IsMappable())
	p.pages = append(p.pages, page)

	return page, nil
}

// Release returns an allocation made with Allocate to its page. Pages stay allocated until the pool
// is destroyed.
func (p *Pool) Release(info AllocationInfo) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if info.Page < 0 || info.Page >= len(p.pages) {
		return errors.Wrapf(crucible.ErrInvalidArgument, "allocation %s refers to a page the pool does not have", info)
	}

	p.logger.Debug("Pool::Release", slog.String("allocation", info.String()))

	page := p.pages[info.Page]
	err := page.release(info)
	if err != nil {
		return err
	}

	if p.destroyed && page.IsEmpty() {
		page.free()
	}

	return nil
}

func (p *Pool) mapAllocation(info AllocationInfo) (unsafe.Pointer, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if info.Page < 0 || info.Page >= len(p.pages) || p.pages[info.Page].freed {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "allocation %s refers to a page the pool does not have", info)
	}

	return p.pages[info.Page].mapRange(info.Offset, info.Size)
}

func (p *Pool) unmapAllocation(info AllocationInfo) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if info.Page < 0 || info.Page >= len(p.pages) || p.pages[info.Page].freed {
		return errors.Wrapf(crucible.ErrInvalidArgument, "allocation %s refers to a page the pool does not have", info)
	}

	return p.pages[info.Page].unmapRange(info.Offset)
}

func (p *Pool) syncAllocation(info AllocationInfo, offset, size int, flush bool) error {
	if offset < 0 || size < 0 || offset+size > info.Size {
		return errors.Wrapf(crucible.ErrInvalidArgument, "range [%d, %d) is outside an allocation of %d bytes", offset, offset+size, info.Size)
	}
	if size == 0 {
		size = info.Size - offset
	}

	if !p.IsMappable() {
		return errors.Wrap(crucible.ErrInvalidState, "the pool's memory is not host visible")
	}
	if p.propertyFlags&core1_0.MemoryPropertyHostCoherent != 0 {
		return nil
	}

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if info.Page < 0 || info.Page >= len(p.pages) || p.pages[info.Page].freed {
		return errors.Wrapf(crucible.ErrInvalidArgument, "allocation %s refers to a page the pool does not have", info)
	}

	memory := p.pages[info.Page].memory
	if flush {
		return memory.Flush(info.Offset+offset, size)
	}
	return memory.Invalidate(info.Offset+offset, size)
}

// CreateBuffer creates a buffer of size bytes with the provided usage, bound to memory from this pool
func (p *Pool) CreateBuffer(size int, usage core1_0.BufferUsageFlags) (*Buffer, error) {
	if size <= 0 {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "buffer size must be greater than 0, got %d", size)
	}

	p.logger.Debug("Pool::CreateBuffer", slog.Int("size", size), slog.String("usage", usage.String()))

	driverBuffer, err := p.device.CreateBuffer(driver.BufferCreateInfo{
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return nil, err
	}

	info, err := p.bind(driverBuffer)
	if err != nil {
		driverBuffer.Destroy()
		return nil, err
	}

	return &Buffer{
		pool:           p,
		buffer:         driverBuffer,
		allocationInfo: info,
		size:           size,
		usage:          usage,
	}, nil
}

// CreateBufferWithDefaultUsage creates a storage buffer that can also be used as a transfer source
// and destination
func (p *Pool) CreateBufferWithDefaultUsage(size int) (*Buffer, error) {
	return p.CreateBuffer(size, DefaultBufferUsage)
}

// CreateImage creates an image from the provided descriptor, bound to memory from this pool. The image
// starts in the Undefined layout.
func (p *Pool) CreateImage(descriptor ImageDescriptor) (*Image, error) {
	err := descriptor.Validate()
	if err != nil {
		return nil, err
	}

	format, err := descriptor.Format()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Pool::CreateImage",
		slog.Int("width", descriptor.Width),
		slog.Int("height", descriptor.Height),
		slog.Int("depth", descriptor.Depth),
		slog.String("format", format.String()))

	driverImage, err := p.device.CreateImage(driver.ImageCreateInfo{
		ImageType: descriptor.ImageType(),
		Format:    format,
		Extent: driver.Extent3D{
			Width:  descriptor.Width,
			Height: descriptor.Height,
			Depth:  descriptor.Depth,
		},
		Tiling:        descriptor.Tiling,
		Usage:         descriptor.usage(),
		InitialLayout: driver.ImageLayoutUndefined,
	})
	if err != nil {
		return nil, err
	}

	info, err := p.bind(driverImage)
	if err != nil {
		driverImage.Destroy()
		return nil, err
	}

	descriptor.Usage = descriptor.usage()
	return &Image{
		pool:           p,
		image:          driverImage,
		allocationInfo: info,
		descriptor:     descriptor,
		format:         format,
		layout:         driver.ImageLayoutUndefined,
	}, nil
}

// CreateImageView creates an image and a view over it. The view owns the image: destroying the view
// destroys both.
func (p *Pool) CreateImageView(imageDescriptor ImageDescriptor, viewDescriptor ImageViewDescriptor) (*ImageView, error) {
	image, err := p.CreateImage(imageDescriptor)
	if err != nil {
		return nil, err
	}

	view, err := image.CreateImageView(viewDescriptor)
	if err != nil {
		return nil, errors.CombineErrors(err, image.Destroy())
	}

	view.ownsImage = true
	return view, nil
}

type bindable interface {
	MemoryRequirements() driver.MemoryRequirements
	BindMemory(memory driver.DeviceMemory, offset int) error
}

func (p *Pool) bind(resource bindable) (AllocationInfo, error) {
	info, err := p.Allocate(resource.MemoryRequirements())
	if err != nil {
		return AllocationInfo{}, err
	}

	p.mutex.RLock()
	memory := p.pages[info.Page].memory
	p.mutex.RUnlock()

	err = resource.BindMemory(memory, info.Offset)
	if err != nil {
		return AllocationInfo{}, errors.CombineErrors(err, p.Release(info))
	}

	return info, nil
}

// AddStatistics sums the statistics of every page into stats
func (p *Pool) AddStatistics(stats *memutils.Statistics) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	for _, page := range p.pages {
		if !page.freed {
			page.freeSpace.AddStatistics(stats)
		}
	}
}

// AddDetailedStatistics sums the detailed statistics of every page into stats
func (p *Pool) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	for _, page := range p.pages {
		if !page.freed {
			page.addDetailedStatistics(stats)
		}
	}
}

// PrintDetailedMap writes a json object describing the pool and each of its pages
func (p *Pool) PrintDetailedMap(writer *jwriter.Writer) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	objState := writer.Object()
	defer objState.End()

	objState.Name("MemoryTypeIndex").Int(p.memoryTypeIndex)
	objState.Name("PropertyFlags").String(p.propertyFlags.String())
	objState.Name("PageSize").Int(p.pageSize)

	var stats memutils.DetailedStatistics
	stats.Clear()
	for _, page := range p.pages {
		if !page.freed {
			page.addDetailedStatistics(&stats)
		}
	}
	statsObj := objState.Name("Stats").Object()
	stats.PrintJson(&statsObj)
	statsObj.End()

	pagesObj := objState.Name("Pages").Object()
	defer pagesObj.End()

	for _, page := range p.pages {
		if page.freed {
			continue
		}

		pageObj := pagesObj.Name(strconv.Itoa(page.index)).Object()
		page.printJson(pageObj)
		pageObj.End()
	}
}

// Validate performs internal consistency checks on every page
func (p *Pool) Validate() error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	for index, page := range p.pages {
		if page.index != index {
			return errors.Errorf("page at position %d believes it has index %d", index, page.index)
		}

		if page.freed {
			continue
		}

		err := page.validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// Destroy frees every page without live allocations. Allocations that are still live are logged and
// an error is returned; their pages are freed when the last of them is released.
func (p *Pool) Destroy() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		return errors.Wrap(crucible.ErrInvalidState, "the pool has already been destroyed")
	}
	p.destroyed = true

	p.logger.Debug("Pool::Destroy", slog.Int("pages", len(p.pages)))

	unreleased := 0
	for _, page := range p.pages {
		if page.IsEmpty() {
			page.free()
			continue
		}

		unreleased += page.AllocationCount()
		page.logUnreleasedAllocations()
	}

	if unreleased > 0 {
		return errors.Wrapf(crucible.ErrInvalidState, "%d allocations were not released before the pool was destroyed", unreleased)
	}

	return nil
}
