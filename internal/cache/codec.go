package cache

import "encoding/binary"

// entryCodec packs an Entry as:
// [4 bytes status][4 bytes ctLen][contentType][4 bytes tcLen][totalCount][body]
type entryCodec struct{}

func (entryCodec) encode(e Entry) ([]byte, error) {
	ct := []byte(e.ContentType)
	tc := []byte(e.TotalCount)
	out := make([]byte, 0, 12+len(ct)+len(tc)+len(e.Body))

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(e.Status))
	out = append(out, hdr[:]...)
	binary.BigEndian.PutUint32(hdr[:], uint32(len(ct)))
	out = append(out, hdr[:]...)
	out = append(out, ct...)
	binary.BigEndian.PutUint32(hdr[:], uint32(len(tc)))
	out = append(out, hdr[:]...)
	out = append(out, tc...)
	out = append(out, e.Body...)
	return out, nil
}

func (entryCodec) decode(raw []byte) (Entry, bool) {
	if len(raw) < 8 {
		return Entry{}, false
	}
	status := int(binary.BigEndian.Uint32(raw[0:4]))
	ctLen := int(binary.BigEndian.Uint32(raw[4:8]))
	if 8+ctLen+4 > len(raw) {
		return Entry{}, false
	}
	ct := string(raw[8 : 8+ctLen])
	off := 8 + ctLen
	tcLen := int(binary.BigEndian.Uint32(raw[off : off+4]))
	off += 4
	if off+tcLen > len(raw) {
		return Entry{}, false
	}
	tc := string(raw[off : off+tcLen])
	off += tcLen

	return Entry{
		Status:      status,
		ContentType: ct,
		TotalCount:  tc,
		Body:        raw[off:],
	}, true
}
