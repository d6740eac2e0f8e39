package cart

import (
	"encoding/binary"
	"errors"
	"testing"
)

// romSpec describes the handful of header fields a synthetic test ROM needs
// set; everything else defaults to what a real cartridge would carry.
type romSpec struct {
	title                               string
	cartType, romSizeCode, ramSizeCode  byte
	size                                int
	corruptLogo, corruptChecksum        bool
}

// buildROM lays out a synthetic ROM from spec with valid header and global
// checksums, then applies any requested corruption on top.
func buildROM(spec romSpec) []byte {
	rom := make([]byte, spec.size)
	copy(rom[0x0104:0x0104+len(nintendoLogo)], nintendoLogo[:])

	title := []byte(spec.title)
	if len(title) > 16 {
		title = title[:16]
	}
	copy(rom[0x0134:0x0144], title)

	rom[0x0143] = 0x00
	rom[0x0144], rom[0x0145] = '0', '1'
	rom[0x0146] = 0x00
	rom[0x0147] = spec.cartType
	rom[0x0148] = spec.romSizeCode
	rom[0x0149] = spec.ramSizeCode
	rom[0x014A] = 0x00
	rom[0x014B] = 0x33
	rom[0x014C] = 0x01
	rom[0x014D] = headerChecksum(rom)
	binary.BigEndian.PutUint16(rom[0x014E:0x0150], globalChecksum(rom))

	if spec.corruptLogo {
		rom[0x0104] ^= 0xFF
	}
	if spec.corruptChecksum {
		rom[0x0134] ^= 0xFF
	}
	return rom
}

func headerChecksum(rom []byte) byte {
	var sum byte
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	return sum
}

func globalChecksum(rom []byte) uint16 {
	var sum uint16
	for i, b := range rom {
		if i == 0x014E || i == 0x014F {
			continue
		}
		sum += uint16(b)
	}
	return sum
}

func TestParseHeader_DecodesCartTypeAndSizes(t *testing.T) {
	cases := []struct {
		name              string
		cartType          byte
		wantCartTypeStr   string
		romSizeCode       byte
		wantROMBytes      int
		wantROMBanks      int
		ramSizeCode       byte
		wantRAMBytes      int
	}{
		{"rom only, no ram", 0x00, "ROM ONLY", 0x00, 32 * 1024, 2, 0x00, 0},
		{"mbc1, 64K rom, 8K ram", 0x01, "MBC1 (variants)", 0x01, 64 * 1024, 4, 0x02, 8 * 1024},
		{"mbc3, 1M rom, 32K ram", 0x13, "MBC3 (variants)", 0x05, 1024 * 1024, 64, 0x03, 32 * 1024},
		{"mbc5, 4M rom, 128K ram", 0x1B, "MBC5 (variants)", 0x07, 4 * 1024 * 1024, 256, 0x04, 128 * 1024},
		{"unrecognized cart type", 0xFF, "Other/unknown", 0x00, 32 * 1024, 2, 0x00, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rom := buildROM(romSpec{
				title:       "TEST",
				cartType:    tc.cartType,
				romSizeCode: tc.romSizeCode,
				ramSizeCode: tc.ramSizeCode,
				size:        tc.wantROMBytes,
			})

			h, err := ParseHeader(rom)
			if err != nil {
				t.Fatalf("ParseHeader error: %v", err)
			}
			if h.Title != "TEST" {
				t.Errorf("Title got %q, want TEST", h.Title)
			}
			if h.CartType != tc.cartType || h.CartTypeStr != tc.wantCartTypeStr {
				t.Errorf("CartType got %#02x/%s, want %#02x/%s", h.CartType, h.CartTypeStr, tc.cartType, tc.wantCartTypeStr)
			}
			if h.ROMSizeBytes != tc.wantROMBytes || h.ROMBanks != tc.wantROMBanks {
				t.Errorf("ROM size got %d bytes/%d banks, want %d/%d", h.ROMSizeBytes, h.ROMBanks, tc.wantROMBytes, tc.wantROMBanks)
			}
			if h.RAMSizeBytes != tc.wantRAMBytes {
				t.Errorf("RAM size got %d, want %d", h.RAMSizeBytes, tc.wantRAMBytes)
			}
			if !h.LogoValid {
				t.Errorf("LogoValid = false, want true for an untouched logo")
			}
			if !HeaderChecksumOK(rom) {
				t.Errorf("HeaderChecksumOK = false, want true")
			}
			if want := globalChecksum(rom); h.GlobalChecksum != want {
				t.Errorf("GlobalChecksum got %#04x, want %#04x", h.GlobalChecksum, want)
			}
		})
	}
}

func TestHeaderChecksum_Bad(t *testing.T) {
	rom := buildROM(romSpec{title: "TEST", size: 32 * 1024, corruptChecksum: true})
	if HeaderChecksumOK(rom) {
		t.Fatalf("HeaderChecksumOK = true, want false after corrupting a checksummed byte")
	}
}

func TestParseHeader_LogoMismatchIsNotFatal(t *testing.T) {
	rom := buildROM(romSpec{title: "HOMEBREW", size: 32 * 1024, corruptLogo: true})

	h, err := ParseHeader(rom)
	if err != nil {
		t.Fatalf("ParseHeader error: %v, want nil (a bad logo is not fatal)", err)
	}
	if h.LogoValid {
		t.Fatalf("LogoValid = true, want false after corrupting the logo")
	}
	// The rest of the header still parses normally around the bad logo.
	if h.Title != "HOMEBREW" {
		t.Fatalf("Title got %q, want HOMEBREW", h.Title)
	}
}

func TestParseHeader_ShortROM(t *testing.T) {
	cases := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"truncated mid-title", 0x0138},
		{"one byte short of the header end", headerEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHeader(make([]byte, tc.size))
			if !errors.Is(err, ErrHeaderTooShort) {
				t.Fatalf("error %v does not wrap ErrHeaderTooShort", err)
			}
		})
	}
}
