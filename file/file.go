package file

import (
	"io"
	"math"
	"os"
)

import (
	"github.com/timtadh/screenedit/consts"
	"github.com/timtadh/screenedit/errors"
)

var _ BlockDevice = (*BlockFile)(nil)

// The block file must already exist. It is never created or resized.
var OPENFLAG = os.O_RDWR

// BlockFile is a flat file of fixed size blocks with no header. Block n
// starts at byte n*BlockSize().
type BlockFile struct {
	path    string
	blksize uint32
	fill    byte
	opened  bool
	file    *os.File
}

func NewBlockFile(path string) *BlockFile {
	return NewBlockFileCustomBlockSize(path, consts.CHARS_PER_SCREEN)
}

func NewBlockFileCustomBlockSize(path string, size uint32) *BlockFile {
	if size == 0 {
		panic(errors.Errorf("blocksize must be positive"))
	}
	return &BlockFile{
		path:    path,
		blksize: size,
		fill:    consts.SPACE,
	}
}

// setFill changes the byte used to pad short blocks.
func (self *BlockFile) setFill(b byte) {
	self.fill = b
}

func (self *BlockFile) Open() error {
	if self.opened {
		return errors.Errorf("File is already open")
	}
	if f, err := os.OpenFile(self.path, OPENFLAG, 0); err != nil {
		return errors.Wrap(err, "opening block file")
	} else {
		self.file = f
		self.opened = true
	}
	return nil
}

func (self *BlockFile) Close() error {
	if !self.opened {
		return nil
	}
	if err := self.file.Close(); err != nil {
		return errors.Wrap(err, "closing block file")
	} else {
		self.file = nil
		self.opened = false
	}
	return nil
}

func (self *BlockFile) Path() string {
	return self.path
}

func (self *BlockFile) BlockSize() uint32 {
	return self.blksize
}

func (self *BlockFile) Size() (uint64, error) {
	if !self.opened {
		return 0, errors.Errorf("File is not open")
	}
	fi, err := self.file.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat block file")
	}
	return uint64(fi.Size()), nil
}

func (self *BlockFile) offset(n int64) (int64, error) {
	if n < 0 {
		return 0, errors.Errorf("block number must be non-negative, got %d", n)
	} else if n > math.MaxInt64/int64(self.blksize) {
		return 0, errors.Errorf("block number %d is past the largest addressable block %d",
			n, math.MaxInt64/int64(self.blksize))
	}
	return n * int64(self.blksize), nil
}

func (self *BlockFile) seek(n int64) error {
	if !self.opened {
		return errors.Errorf("File is not open")
	}
	p, err := self.offset(n)
	if err != nil {
		return err
	}
	for pos, err := self.file.Seek(p, io.SeekStart); pos != p; pos, err = self.file.Seek(p, io.SeekStart) {
		if err != nil {
			return errors.Wrap(err, "seeking to block %d", n)
		}
	}
	return nil
}

func (self *BlockFile) WriteBlock(n int64, block []byte) error {
	if len(block) != int(self.blksize) {
		return errors.Errorf("block is %d bytes, expected %d", len(block), self.blksize)
	}
	if err := self.seek(n); err != nil {
		return err
	}
	w, err := self.file.Write(block)
	if err != nil {
		return errors.Wrap(err, "writing block %d", n)
	} else if w != len(block) {
		return errors.Errorf("could not write the full block %d", n)
	}
	return nil
}

// ReadBlock reads block n. Running into the end of the file is not an
// error: the rest of the block is filled and short is the number of
// bytes that had to be filled.
func (self *BlockFile) ReadBlock(n int64) (block []byte, short int, err error) {
	if err := self.seek(n); err != nil {
		return nil, 0, err
	}
	block = make([]byte, self.blksize)
	r, err := io.ReadFull(self.file, block)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		for i := r; i < len(block); i++ {
			block[i] = self.fill
		}
		return block, len(block) - r, nil
	} else if err != nil {
		return nil, 0, errors.Wrap(err, "reading block %d", n)
	}
	return block, 0, nil
}
