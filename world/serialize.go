package world

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

// Serialize appends the fixed-size binary form of data to buf. Writes to a
// bytes.Buffer cannot fail, so an error here means data has no fixed size,
// which is a programming error.
func Serialize(buf *bytes.Buffer, data any) {
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		panic(fmt.Errorf("serializing %T: %w", data, err))
	}
}

func Deserialize(r io.Reader, data any) error {
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("deserializing %T: %w", data, err)
	}
	return nil
}

// SerializeSlice writes the length of s followed by its elements.
func SerializeSlice[T any](buf *bytes.Buffer, s []T) {
	Serialize(buf, int64(len(s)))
	Serialize(buf, s)
}

// DeserializeSlice reads what SerializeSlice wrote. The length read from r
// must fit in the bytes left in r, otherwise a corrupt length could ask for
// an arbitrarily large allocation.
func DeserializeSlice[T any](r *bytes.Buffer, s *[]T) error {
	var n int64
	if err := Deserialize(r, &n); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("deserializing []%T: negative length %d", *new(T), n)
	}
	elemSize := binary.Size(*new(T))
	if elemSize <= 0 {
		return fmt.Errorf("deserializing []%T: elements have no fixed size", *new(T))
	}
	if n > int64(r.Len()/elemSize) {
		return fmt.Errorf("deserializing []%T: length %d exceeds the %d "+
			"bytes left", *new(T), n, r.Len())
	}
	*s = make([]T, n)
	return Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	// Both calls only fail if writing to buf fails, which it can't.
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func Unzip(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unzipping: %w", err)
	}
	defer func() { _ = r.Close() }()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unzipping: %w", err)
	}
	return out, nil
}
