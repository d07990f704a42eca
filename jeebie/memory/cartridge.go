package memory

const titleLength = 16

const (
	entryPointAddress       = 0x100
	logoAddress             = 0x104
	titleAddress            = 0x134
	manufacturerCodeAddress = 0x13F
	cgbFlagAddress          = 0x143
	newLicenseCodeAddress   = 0x144
	sgbFlagAddress          = 0x146
	cartridgeTypeAddress    = 0x147
	romSizeAddress          = 0x148
	ramSizeAddress          = 0x149
	destinationCodeAddress  = 0x14A
	oldLicenseCodeAddress   = 0x14B
	versionNumberAddress    = 0x14C
	headerChecksumAddress   = 0x14D
	globalChecksumAddress   = 0x14E
)

// mbcType identifies the memory bank controller declared by a cartridge header.
type mbcType uint8

const (
	NoMBCType mbcType = iota
	MBC1Type
	MBC1MultiType
	MBC2Type
	MBC3Type
	MBC5Type
	MBCUnknownType
)

// ramBankCounts maps the header's RAM size byte (0x149) to a bank count.
// Each bank is 8KiB, except 0x01 which is a legacy 2KiB-only declaration
// that NewNoMBC/NewMBC1 treat as a single bank.
var ramSizeToBankCount = map[uint8]uint8{
	0x00: 0,
	0x01: 1,
	0x02: 1,
	0x03: 4,
	0x04: 16,
	0x05: 8,
}

// Cartridge holds ROM data plus the header metadata needed to pick and
// configure the right MBC implementation.
type Cartridge struct {
	data           []byte
	title          string
	headerChecksum uint16
	globalChecksum uint16
	version        uint8
	cartType       uint8
	romSize        uint8
	ramSize        uint8

	mbcType      mbcType
	hasBattery   bool
	hasRTC       bool
	hasRumble    bool
	ramBankCount uint8
	isCGB        bool
}

// NewCartridge creates an empty cartridge, useful only for debugging purposes.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:    make([]byte, 0x10000),
		mbcType: NoMBCType,
	}
}

// NewCartridgeWithData initializes a new Cartridge from a slice of bytes,
// parsing the header at 0x100-0x14F to derive its MBC configuration.
func NewCartridgeWithData(bytes []byte) *Cartridge {
	titleBytes := bytes[titleAddress : titleAddress+titleLength]
	cartType := bytes[cartridgeTypeAddress]
	ramSize := bytes[ramSizeAddress]

	cart := &Cartridge{
		data:           make([]byte, len(bytes)),
		title:          cleanGameboyTitle(titleBytes),
		headerChecksum: combineBytes(bytes[headerChecksumAddress+1], bytes[headerChecksumAddress]),
		globalChecksum: combineBytes(bytes[globalChecksumAddress+1], bytes[globalChecksumAddress]),
		version:        bytes[versionNumberAddress],
		cartType:       cartType,
		romSize:        bytes[romSizeAddress],
		ramSize:        ramSize,
		isCGB:          bytes[cgbFlagAddress]&0x80 != 0,
		ramBankCount:   ramSizeToBankCount[ramSize],
	}

	cart.mbcType, cart.hasBattery, cart.hasRTC, cart.hasRumble = decodeCartType(cartType)

	copy(cart.data, bytes)

	return cart
}

// decodeCartType maps the header's cartridge-type byte (0x147) to an MBC
// kind plus the auxiliary hardware flags bundled with that cartridge type.
// Reference: https://gbdev.io/pandocs/The_Cartridge_Header.html#0147--cartridge-type
func decodeCartType(cartType uint8) (kind mbcType, hasBattery, hasRTC, hasRumble bool) {
	switch cartType {
	case 0x00, 0x08, 0x09:
		kind = NoMBCType
	case 0x01, 0x02:
		kind = MBC1Type
	case 0x03:
		kind = MBC1Type
		hasBattery = true
	case 0x05, 0x06:
		kind = MBC2Type
	case 0x0F, 0x10:
		kind = MBC3Type
		hasBattery = true
		hasRTC = true
	case 0x11, 0x12:
		kind = MBC3Type
	case 0x13:
		kind = MBC3Type
		hasBattery = true
	case 0x19, 0x1A:
		kind = MBC5Type
	case 0x1B:
		kind = MBC5Type
		hasBattery = true
	case 0x1C, 0x1D:
		kind = MBC5Type
		hasRumble = true
	case 0x1E:
		kind = MBC5Type
		hasBattery = true
		hasRumble = true
	default:
		kind = MBCUnknownType
	}

	return kind, hasBattery, hasRTC, hasRumble
}

// combineBytes merges two bytes into a 16-bit value, high byte first.
func combineBytes(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// ReadByte reads a byte at the specified address. Does not check bounds, so the caller must make sure the
// address is valid for the cartridge.
func (c Cartridge) ReadByte(addr uint16) uint8 {
	return c.data[addr]
}

// WriteByte writes a byte directly into cartridge-backed storage. Used only
// by the NoMBC fallback path; real cartridges route writes through their MBC.
func (c Cartridge) WriteByte(addr uint16, value uint8) {
	c.data[addr] = value
}

// Title returns the cleaned-up game title parsed from the header.
func (c Cartridge) Title() string {
	return c.title
}

// IsCGB reports whether the header's CGB flag (0x143) marks this cartridge
// as supporting or requiring Color hardware.
func (c Cartridge) IsCGB() bool {
	return c.isCGB
}
