package session

import (
	"github.com/vkngwrapper/crucible/command"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/memory"
)

// ChangeImageLayout transitions image to layout and waits for the transition to complete
func (s *Session) ChangeImageLayout(image *memory.Image, layout driver.ImageLayout) error {
	return s.oneShot(func(buffer *command.Buffer) error {
		return buffer.ChangeImageLayout(image, layout)
	})
}

// ClearImage sets every texel of image to zero. Images in a layout that does not accept transfer
// writes are moved to TransferDstOptimal first and left there.
func (s *Session) ClearImage(image *memory.Image) error {
	return s.oneShot(func(buffer *command.Buffer) error {
		if !acceptsTransferWrites(image.Layout()) {
			err := buffer.ChangeImageLayout(image, driver.ImageLayoutTransferDstOptimal)
			if err != nil {
				return err
			}
		}
		return buffer.ClearImage(image)
	})
}

// CopyImage copies src into dst, which must have the same extent. Both images are returned to the
// layouts they were in; an image that was Undefined or Preinitialized is left in General, which
// keeps the copied contents.
func (s *Session) CopyImage(src, dst *memory.Image) error {
	srcLayout := restorableLayout(src.Layout())
	dstLayout := restorableLayout(dst.Layout())

	return s.oneShot(func(buffer *command.Buffer) error {
		err := buffer.ChangeImageLayout(src, driver.ImageLayoutTransferSrcOptimal)
		if err != nil {
			return err
		}

		err = buffer.ChangeImageLayout(dst, driver.ImageLayoutTransferDstOptimal)
		if err != nil {
			return err
		}

		err = buffer.CopyImageToImage(src, dst)
		if err != nil {
			return err
		}

		err = buffer.ChangeImageLayout(src, srcLayout)
		if err != nil {
			return err
		}

		return buffer.ChangeImageLayout(dst, dstLayout)
	})
}

// CopyBuffer copies all of src to the start of dst and waits for the copy to complete
func (s *Session) CopyBuffer(src, dst *memory.Buffer) error {
	return s.oneShot(func(buffer *command.Buffer) error {
		return buffer.CopyBuffer(src, dst)
	})
}

func acceptsTransferWrites(layout driver.ImageLayout) bool {
	return layout == driver.ImageLayoutGeneral || layout == driver.ImageLayoutTransferDstOptimal
}

func restorableLayout(layout driver.ImageLayout) driver.ImageLayout {
	if layout == driver.ImageLayoutUndefined || layout == driver.ImageLayoutPreinitialized {
		return driver.ImageLayoutGeneral
	}
	return layout
}
