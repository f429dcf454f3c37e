package file

type BlockSizer interface {
	BlockSize() uint32
}

// BlockReader reads block n. Short blocks are padded out to the block
// size and short reports how many bytes were padded.
type BlockReader interface {
	ReadBlock(n int64) (block []byte, short int, err error)
}

type BlockWriter interface {
	WriteBlock(n int64, block []byte) error
}

type BlockReadWriter interface {
	BlockReader
	BlockWriter
}

type Closer interface {
	Close() error
}

type BlockDevice interface {
	BlockSizer
	BlockReadWriter
	Closer
}
