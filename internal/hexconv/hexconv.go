package hexconv

// Halfbyte maps an ASCII character to the half-byte it encodes in a hex
// literal. Characters that aren't hex digits map to 0xFF, so a plain
// `Halfbyte[c] > 0x0f` check rejects them.
var Halfbyte = [256]byte{}

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = 0xFF
	}

	for c := '0'; c <= '9'; c++ {
		Halfbyte[c] = byte(c - '0')
	}

	for c := 'a'; c <= 'f'; c++ {
		Halfbyte[c] = byte(c-'a') + 10
	}

	for c := 'A'; c <= 'F'; c++ {
		Halfbyte[c] = byte(c-'A') + 10
	}
}
