package simd

// Each of these wraps the shared SWAR core (swar.go) with the lane width
// nominally associated with its instruction-set tier. They are required
// by spec.md §8 invariant 5 to return exactly what the scalar
// implementation returns for every input; dispatch_test.go checks that
// for the tier selected on the machine running the tests.

func skipWhitespaceSSE2(data []byte) int   { return skipWhitespaceWords(data, 2) }  // 16-byte lanes
func skipWhitespaceSSSE3(data []byte) int  { return skipWhitespaceWords(data, 2) }  // 16-byte lanes
func skipWhitespaceSSE42(data []byte) int  { return skipWhitespaceWords(data, 2) }  // 16-byte lanes
func skipWhitespaceAVX2(data []byte) int   { return skipWhitespaceWords(data, 4) }  // 32-byte lanes
func skipWhitespaceAVX512(data []byte) int { return skipWhitespaceWords(data, 8) }  // 64-byte lanes
func skipWhitespaceNEON(data []byte) int   { return skipWhitespaceWords(data, 2) }  // 16-byte lanes
