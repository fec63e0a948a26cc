package source

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

type byteOrderMark int

const (
	bomNone byteOrderMark = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".bin": {}, ".bmp": {}, ".exe": {}, ".gif": {}, ".gz": {},
	".ico": {}, ".jpeg": {}, ".jpg": {}, ".pdf": {}, ".png": {}, ".so": {},
	".tar": {}, ".tgz": {}, ".wasm": {}, ".webp": {}, ".xz": {}, ".zip": {},
}

// IsText reports whether content can be shown as text. Obvious binary
// extensions are rejected before sniffing the first bytes.
func IsText(path string, content []byte) bool {
	if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if detectBOM(sample) != bomNone {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != 0x1b {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

// Decode converts BOM-prefixed UTF-8 and UTF-16 content to a UTF-8 string.
// Content without a BOM is returned as is.
func Decode(content []byte) string {
	switch detectBOM(content) {
	case bomUTF8:
		return string(content[3:])
	case bomUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

func detectBOM(sample []byte) byteOrderMark {
	switch {
	case len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF:
		return bomUTF8
	case len(sample) >= 2 && sample[0] == 0xFF && sample[1] == 0xFE:
		return bomUTF16LE
	case len(sample) >= 2 && sample[0] == 0xFE && sample[1] == 0xFF:
		return bomUTF16BE
	default:
		return bomNone
	}
}
