// Package section defines the on-disk layout of encoded resources.
//
// An encoded resource is a fixed header followed by one codeword per original byte:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (5 bytes, ASCII)                      │
//	│  - "ENC3_": three-symbol variant, 6-char words│
//	│  - "ENC4_": four-symbol variant, 4-char words │
//	├──────────────────────────────────────────────┤
//	│ Word_0 Word_1 ... Word_{n-1}                 │
//	│  - fixed-length ASCII codewords              │
//	│  - in original byte order                    │
//	└──────────────────────────────────────────────┘
//
// There is no footer and no explicit length field: the logical length is
// (rawSize - HeaderSize) / wordLength. A trailing partial word is ignored when
// computing the length.
package section
