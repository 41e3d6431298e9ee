package regfile

import "errors"

// A Storage keeps the data behind the register block.
//
// The storage manages its data in fixed-size pages. Pages that are never
// touched by Read or Write are not allocated.
type Storage struct {
	pageSize uint64
	capacity uint64
	pages    map[uint64][]byte
}

// NewStorage creates a storage object with the given capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		pageSize: 4096,
		capacity: capacity,
		pages:    make(map[uint64][]byte),
	}
}

func (s *Storage) page(addr uint64) ([]byte, uint64, error) {
	if addr >= s.capacity {
		return nil, 0, errors.New("address beyond the storage capacity")
	}

	inPage := addr % s.pageSize
	base := addr - inPage

	p, ok := s.pages[base]
	if !ok {
		p = make([]byte, s.pageSize)
		s.pages[base] = p
	}

	return p, inPage, nil
}

// Read returns length bytes starting at address.
func (s *Storage) Read(address, length uint64) ([]byte, error) {
	res := make([]byte, length)

	read := uint64(0)
	for read < length {
		p, inPage, err := s.page(address + read)
		if err != nil {
			return nil, err
		}

		n := copy(res[read:], p[inPage:])
		read += uint64(n)
	}

	return res, nil
}

// Write stores data starting at address.
func (s *Storage) Write(address uint64, data []byte) error {
	written := uint64(0)
	for written < uint64(len(data)) {
		p, inPage, err := s.page(address + written)
		if err != nil {
			return err
		}

		n := copy(p[inPage:], data[written:])
		written += uint64(n)
	}

	return nil
}
