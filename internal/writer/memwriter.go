package writer

// MemWriter captures rendered bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteDump stores a copy of the provided buffer.
func (w *MemWriter) WriteDump(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
