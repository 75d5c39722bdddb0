package report

// CRC16 calculates the checksum carried in a report frame trailer. The
// polynomial is the CCITT variant used by serial firmware links, computed
// byte-wise without a lookup table so it stays cheap on the MCU side.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		b = b ^ uint8(crc&0xFF)
		b = b ^ (b << 4)
		b16 := uint16(b)
		crc = (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
	}
	return crc
}
