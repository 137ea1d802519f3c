package hal

// packedToRGBA expands packed 0RGB pixels into opaque RGBA bytes.
// dst must hold at least 4*len(src) bytes.
func packedToRGBA(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
}

func unpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

func checkFrame(pix []uint32, width, height int) bool {
	return width > 0 && height > 0 && len(pix) == width*height
}
